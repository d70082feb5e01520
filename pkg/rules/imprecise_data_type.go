package rules

import (
	"github.com/nsxbet/sqlcheck/pkg/advisor"
	"github.com/nsxbet/sqlcheck/pkg/types"
)

const impreciseDataTypeMessage = `● Use NUMERIC instead of FLOAT:
The FLOAT type, like the float in most programming languages, encodes a real
number in an IEEE 754 binary format. A consequence of this representation is
that some values cannot be stored exactly and get rounded. Rounding errors
accumulate as you aggregate, and equality comparisons against a rounded value
can quietly fail. When you need exact fractional values, as with monetary
amounts, use the NUMERIC or DECIMAL types instead: they store the precision
you declare, without rounding.`

func init() {
	advisor.RegisterPattern(advisor.Rule{
		Type:             advisor.RuleImpreciseDataType,
		Title:            "Imprecise Data Type",
		Message:          impreciseDataTypeMessage,
		Pattern:          `(?i)(\sfloat)|(\sreal)|(\sdouble precision)`,
		Level:            types.RuleLevel_WARNING,
		PatternType:      types.PatternType_CREATION,
		Code:             advisor.CreationImpreciseDataType,
		MatchIsViolation: true,
	})
}
