package advisor

// Code is the error code attached to an advice.
type Code int

// Application error codes for the checker.
const (
	Ok Code = 0

	// 1 ~ 99 general checker error.
	Internal            Code = 1
	PatternCompileError Code = 2

	// 101 ~ 199 query anti-pattern.
	QuerySelectStar Code = 101

	// 201 ~ 299 schema creation anti-pattern.
	CreationMultiValuedAttribute Code = 201
	CreationRecursiveDependency  Code = 202
	CreationNoPrimaryKey         Code = 203
	CreationGenericPrimaryKey    Code = 204
	CreationNoForeignKey         Code = 205
	CreationImpreciseDataType    Code = 206
)

// Int32 returns the int32 representation of the Code.
func (c Code) Int32() int32 {
	return int32(c)
}
