package reql

// Wire-protocol enumerations, transcribed from the protocol definition
// (ql2.proto).  These values are fixed by the server; do not renumber.

// TermType identifies the operation a Term performs.  A term whose type is
// TermDatum is a literal value; every other type is an operation whose
// meaning is determined by its ordered arguments and trailing options.
type TermType int32

const (
	TermDatum       TermType = 1
	TermMakeArray   TermType = 2
	TermMakeObj     TermType = 3
	TermVar         TermType = 10
	TermJavascript  TermType = 11
	TermError       TermType = 12
	TermImplicitVar TermType = 13

	TermDb    TermType = 14
	TermTable TermType = 15
	TermGet   TermType = 16

	TermEq  TermType = 17
	TermNe  TermType = 18
	TermLt  TermType = 19
	TermLe  TermType = 20
	TermGt  TermType = 21
	TermGe  TermType = 22
	TermNot TermType = 23

	TermAdd TermType = 24
	TermSub TermType = 25
	TermMul TermType = 26
	TermDiv TermType = 27
	TermMod TermType = 28

	TermAppend    TermType = 29
	TermSlice     TermType = 30
	TermGetField  TermType = 31
	TermHasFields TermType = 32
	TermPluck     TermType = 33
	TermWithout   TermType = 34
	TermMerge     TermType = 35

	TermReduce    TermType = 37
	TermMap       TermType = 38
	TermFilter    TermType = 39
	TermConcatMap TermType = 40
	TermOrderBy   TermType = 41
	TermDistinct  TermType = 42
	TermCount     TermType = 43
	TermUnion     TermType = 44
	TermNth       TermType = 45

	TermInnerJoin TermType = 48
	TermOuterJoin TermType = 49
	TermEqJoin    TermType = 50

	TermCoerceTo TermType = 51
	TermTypeOf   TermType = 52

	TermUpdate  TermType = 53
	TermDelete  TermType = 54
	TermReplace TermType = 55
	TermInsert  TermType = 56

	TermDbCreate    TermType = 57
	TermDbDrop      TermType = 58
	TermDbList      TermType = 59
	TermTableCreate TermType = 60
	TermTableDrop   TermType = 61
	TermTableList   TermType = 62

	TermFuncall TermType = 64
	TermBranch  TermType = 65
	TermOr      TermType = 66
	TermAnd     TermType = 67
	TermForEach TermType = 68
	TermFunc    TermType = 69

	TermSkip  TermType = 70
	TermLimit TermType = 71
	TermZip   TermType = 72

	TermAsc  TermType = 73
	TermDesc TermType = 74

	TermIndexCreate TermType = 75
	TermIndexDrop   TermType = 76
	TermIndexList   TermType = 77

	TermGetAll TermType = 78
	TermInfo   TermType = 79

	TermPrepend TermType = 80
	TermSample  TermType = 81

	TermInsertAt TermType = 82
	TermDeleteAt TermType = 83
	TermChangeAt TermType = 84
	TermSpliceAt TermType = 85

	TermIsEmpty   TermType = 86
	TermOffsetsOf TermType = 87

	TermSetInsert       TermType = 88
	TermSetIntersection TermType = 89
	TermSetUnion        TermType = 90
	TermSetDifference   TermType = 91

	TermDefault    TermType = 92
	TermContains   TermType = 93
	TermKeys       TermType = 94
	TermDifference TermType = 95
	TermWithFields TermType = 96
	TermMatch      TermType = 97
	TermJSON       TermType = 98

	TermISO8601     TermType = 99
	TermToISO8601   TermType = 100
	TermEpochTime   TermType = 101
	TermToEpochTime TermType = 102
	TermNow         TermType = 103
	TermInTimezone  TermType = 104
	TermDuring      TermType = 105
	TermDate        TermType = 106

	TermMonday    TermType = 107
	TermTuesday   TermType = 108
	TermWednesday TermType = 109
	TermThursday  TermType = 110
	TermFriday    TermType = 111
	TermSaturday  TermType = 112
	TermSunday    TermType = 113

	TermJanuary   TermType = 114
	TermFebruary  TermType = 115
	TermMarch     TermType = 116
	TermApril     TermType = 117
	TermMay       TermType = 118
	TermJune      TermType = 119
	TermJuly      TermType = 120
	TermAugust    TermType = 121
	TermSeptember TermType = 122
	TermOctober   TermType = 123
	TermNovember  TermType = 124
	TermDecember  TermType = 125

	TermTimeOfDay TermType = 126
	TermTimezone  TermType = 127
	TermYear      TermType = 128
	TermMonth     TermType = 129
	TermDay       TermType = 130
	TermDayOfWeek TermType = 131
	TermDayOfYear TermType = 132
	TermHours     TermType = 133
	TermMinutes   TermType = 134
	TermSeconds   TermType = 135
	TermTime      TermType = 136

	TermLiteral TermType = 137
	TermSync    TermType = 138

	TermIndexStatus TermType = 139
	TermIndexWait   TermType = 140

	TermUpcase   TermType = 141
	TermDowncase TermType = 142

	TermObject TermType = 143
	TermGroup  TermType = 144
	TermSum    TermType = 145
	TermAvg    TermType = 146
	TermMin    TermType = 147
	TermMax    TermType = 148
	TermSplit  TermType = 149

	TermUngroup TermType = 150
	TermRandom  TermType = 151
	TermChanges TermType = 152
	TermHTTP    TermType = 153
	TermArgs    TermType = 154
	TermBinary  TermType = 155

	TermIndexRename TermType = 156

	TermGeojson         TermType = 157
	TermToGeojson       TermType = 158
	TermPoint           TermType = 159
	TermLine            TermType = 160
	TermPolygon         TermType = 161
	TermDistance        TermType = 162
	TermIntersects      TermType = 163
	TermIncludes        TermType = 164
	TermCircle          TermType = 165
	TermGetIntersecting TermType = 166
	TermFill            TermType = 167
	TermGetNearest      TermType = 168

	TermUUID         TermType = 169
	TermBracket      TermType = 170
	TermPolygonSub   TermType = 171
	TermToJSONString TermType = 172
	TermRange        TermType = 173

	TermConfig      TermType = 174
	TermStatus      TermType = 175
	TermReconfigure TermType = 176
	TermWait        TermType = 177
	TermRebalance   TermType = 179

	TermMinval TermType = 180
	TermMaxval TermType = 181

	TermBetween TermType = 182

	TermFloor TermType = 183
	TermCeil  TermType = 184
	TermRound TermType = 185

	TermValues TermType = 186
	TermFold   TermType = 187
	TermGrant  TermType = 188

	TermBitAnd TermType = 191
	TermBitOr  TermType = 192
	TermBitXor TermType = 193
	TermBitNot TermType = 194
	TermBitSal TermType = 195
	TermBitSar TermType = 196
)

// QueryType is the first element of every query envelope written to the
// server.
type QueryType int32

const (
	QueryStart       QueryType = 1
	QueryContinue    QueryType = 2
	QueryStop        QueryType = 3
	QueryNoreplyWait QueryType = 4
	QueryServerInfo  QueryType = 5
)

// ResponseType is the "t" field of every response read from the server.
type ResponseType int32

const (
	ResponseSuccessAtom     ResponseType = 1
	ResponseSuccessSequence ResponseType = 2
	ResponseSuccessPartial  ResponseType = 3
	ResponseWaitComplete    ResponseType = 4
	ResponseServerInfo      ResponseType = 5
	ResponseClientError     ResponseType = 16
	ResponseCompileError    ResponseType = 17
	ResponseRuntimeError    ResponseType = 18
)

// ErrorType refines a runtime error response ("e" field).
type ErrorType int32

const (
	ErrorInternal         ErrorType = 1000000
	ErrorResourceLimit    ErrorType = 2000000
	ErrorQueryLogic       ErrorType = 3000000
	ErrorNonExistence     ErrorType = 3100000
	ErrorOpFailed         ErrorType = 4100000
	ErrorOpIndeterminate  ErrorType = 4200000
	ErrorUser             ErrorType = 5000000
	ErrorPermissionsError ErrorType = 6000000
)

// ResponseNote annotates a response stream ("n" field); feed notes mark
// responses that belong to a changefeed.
type ResponseNote int32

const (
	NoteSequenceFeed       ResponseNote = 1
	NoteAtomFeed           ResponseNote = 2
	NoteOrderByLimitFeed   ResponseNote = 3
	NoteUnidirectionalFeed ResponseNote = 4
	NoteIncludesStates     ResponseNote = 5
)
