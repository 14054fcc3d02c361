package reql

// Geospatial commands.

// Point builds a geometry point from longitude and latitude.
//
// Example usage:
//
//	r.Point(-122.423246, 37.779388)
func Point(longitude, latitude interface{}) Term {
	return newTerm(TermPoint).withLiteralArgs(longitude, latitude)
}

// Line builds a geometry line through two or more points.
func Line(points ...interface{}) Term {
	return newTerm(TermLine).withManyArgs(points...)
}

// Polygon builds a geometry polygon from three or more points.
func Polygon(points ...interface{}) Term {
	return newTerm(TermPolygon).withManyArgs(points...)
}

// Circle approximates a circle of the given radius around a point.
//
// Example usage:
//
//	r.Circle(r.Point(-122.4, 37.7), 1000, r.CircleOpts{Unit: "m"})
func Circle(args ...interface{}) Term {
	return newTerm(TermCircle).withManyArgs(args...)
}

// GeoJSON converts a GeoJSON object into a geometry value.
func GeoJSON(geojson interface{}) Term {
	return newTerm(TermGeojson).withLiteralArgs(geojson)
}

// ToGeoJSON converts a geometry value into a GeoJSON object.
func (t Term) ToGeoJSON() Term {
	return newTerm(TermToGeojson).withParent(t)
}

// Distance computes the distance between this geometry and another.
func (t Term) Distance(geometry interface{}, opts ...interface{}) Term {
	cmd := newTerm(TermDistance).withLiteralArgs(geometry)
	for _, o := range opts {
		cmd = cmd.withOptArg(o)
	}
	return cmd.withParent(t)
}

// Intersects tests whether this geometry intersects another.
func (t Term) Intersects(geometry interface{}) Term {
	return newTerm(TermIntersects).withLiteralArgs(geometry).withParent(t)
}

// Includes tests whether this geometry completely contains another.
func (t Term) Includes(geometry interface{}) Term {
	return newTerm(TermIncludes).withLiteralArgs(geometry).withParent(t)
}

// Fill converts a line into a filled polygon.
func (t Term) Fill() Term {
	return newTerm(TermFill).withParent(t)
}

// PolygonSub cuts one polygon out of another.
func (t Term) PolygonSub(polygon interface{}) Term {
	return newTerm(TermPolygonSub).withLiteralArgs(polygon).withParent(t)
}

// GetIntersecting selects the documents of a geo-indexed table whose
// indexed geometry intersects the given one.
//
// Example usage:
//
//	r.Table("parks").GetIntersecting(circle, r.Index("area"))
func (t Term) GetIntersecting(geometry interface{}, opts ...interface{}) Term {
	cmd := newTerm(TermGetIntersecting).withLiteralArgs(geometry)
	for _, o := range opts {
		cmd = cmd.withOptArg(o)
	}
	return cmd.withParent(t)
}

// GetNearest selects the geo-indexed documents nearest to a point, with
// their distances.
func (t Term) GetNearest(point interface{}, opts ...interface{}) Term {
	cmd := newTerm(TermGetNearest).withLiteralArgs(point)
	for _, o := range opts {
		cmd = cmd.withOptArg(o)
	}
	return cmd.withParent(t)
}
