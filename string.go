package reql

import (
	"encoding/json"
	"fmt"
)

// String renders the term in its wire form, which is the most precise
// description of what the server will receive.
//
// Example usage:
//
//	fmt.Println(r.Table("heroes").Count())  // [43,[[15,["heroes"]]]]
func (t Term) String() string {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Sprintf("reql.Term(%v)", err)
	}
	return string(data)
}
