package db

import (
	"fmt"
)

type (
	LinkOperatorType  string
	OperatorValueType string
)

const (
	LinkOperatorTypeAnd LinkOperatorType = "and"
	LinkOperatorTypeOr  LinkOperatorType = "or"

	OperatorValueTypeContains   OperatorValueType = "contains"
	OperatorValueTypeStartsWith OperatorValueType = "startsWith"
	OperatorValueTypeEndsWith   OperatorValueType = "endsWith"
	OperatorValueTypeEquals     OperatorValueType = "equals"

	// Dates
	OperatorValueTypeIs           OperatorValueType = "is"
	OperatorValueTypeIsNot        OperatorValueType = "not"
	OperatorValueTypeIsAfter      OperatorValueType = "after"
	OperatorValueTypeIsOnOrAfter  OperatorValueType = "onOrAfter"
	OperatorValueTypeIsBefore     OperatorValueType = "before"
	OperatorValueTypeIsOnOrBefore OperatorValueType = "onOrBefore"

	// Numbers
	OperatorValueTypeNumberEquals    OperatorValueType = "="
	OperatorValueTypeNumberNotEquals OperatorValueType = "!="
	OperatorValueTypeGreaterThan     OperatorValueType = ">"
	OperatorValueTypeGreaterOrEqual  OperatorValueType = ">="
	OperatorValueTypeLessThan        OperatorValueType = "<"
	OperatorValueTypeLessOrEqual     OperatorValueType = "<="
)

// ListFilterRequest contains filter data commonly used in list requests
type ListFilterRequest struct {
	LinkOperator LinkOperatorType         `json:"linkOperator"`
	Items        []*ListFilterRequestItem `json:"items"`
}

// ListFilterRequestItem contains instructions on filtering
type ListFilterRequestItem struct {
	ColumnField   string            `json:"columnField"`
	OperatorValue OperatorValueType `json:"operatorValue"`
	Value         string            `json:"value"`
}

// GenerateListFilterSQL builds one positional-bind condition for a column.
// The returned value is the bind argument matching the $index placeholder;
// an empty condition means the item should be skipped.
func GenerateListFilterSQL(column string, value string, operator OperatorValueType, index int) (string, string) {
	checkValue := value
	condition := ""
	indexStr := fmt.Sprintf("$%d", index)

	switch operator {
	case OperatorValueTypeContains, OperatorValueTypeStartsWith, OperatorValueTypeEndsWith:
		// Strings
		condition = fmt.Sprintf("%s ILIKE %s", column, indexStr)
		switch operator {
		case OperatorValueTypeContains:
			checkValue = "%" + value + "%"
		case OperatorValueTypeStartsWith:
			checkValue = value + "%"
		case OperatorValueTypeEndsWith:
			checkValue = "%" + value
		}

	case OperatorValueTypeIs, OperatorValueTypeIsNot, OperatorValueTypeIsAfter, OperatorValueTypeIsOnOrAfter, OperatorValueTypeIsBefore, OperatorValueTypeIsOnOrBefore:
		// Dates (convert column to date to compare by day)
		column += "::date"
		if checkValue == "" {
			return "", checkValue // don't filter if no value is set
		}

	case OperatorValueTypeNumberEquals, OperatorValueTypeNumberNotEquals, OperatorValueTypeGreaterThan, OperatorValueTypeGreaterOrEqual, OperatorValueTypeLessThan, OperatorValueTypeLessOrEqual:
		// Numbers
		if checkValue == "" {
			checkValue = "0"
		}
	}

	switch operator {
	case OperatorValueTypeEquals, OperatorValueTypeIs, OperatorValueTypeNumberEquals:
		condition = fmt.Sprintf("%s = %s", column, indexStr)
	case OperatorValueTypeIsNot, OperatorValueTypeNumberNotEquals:
		condition = fmt.Sprintf("%s <> %s", column, indexStr)
	case OperatorValueTypeIsAfter, OperatorValueTypeGreaterThan:
		condition = fmt.Sprintf("%s > %s", column, indexStr)
	case OperatorValueTypeIsOnOrAfter, OperatorValueTypeGreaterOrEqual:
		condition = fmt.Sprintf("%s >= %s", column, indexStr)
	case OperatorValueTypeIsBefore, OperatorValueTypeLessThan:
		condition = fmt.Sprintf("%s < %s", column, indexStr)
	case OperatorValueTypeIsOnOrBefore, OperatorValueTypeLessOrEqual:
		condition = fmt.Sprintf("%s <= %s", column, indexStr)
	}

	return condition, checkValue
}
