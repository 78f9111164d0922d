package enums

import (
	"github.com/evan-idocoding/zsetting/enum"
	"github.com/evan-idocoding/zsetting/setting"
)

//go:generate go tool stringer -type MySQLDataTypesSupport -linecomment

// MySQLDataTypesSupport selects MySQL column types that are mapped to native
// types instead of being converted to strings.
type MySQLDataTypesSupport uint8

const (
	// Decimal maps DECIMAL to Decimal.
	Decimal MySQLDataTypesSupport = iota // decimal

	// DateTime64 maps DATETIME and TIMESTAMP with fractional seconds to DateTime64.
	DateTime64 // datetime64

	// Date2Date32 maps DATE to Date32.
	Date2Date32 // date2Date32

	// Date2String maps DATE to String.
	Date2String // date2String
)

var mysqlDataTypesSupportTraits = enum.Must(enum.New(
	[]MySQLDataTypesSupport{Decimal, DateTime64, Date2Date32, Date2String},
	MySQLDataTypesSupport.String,
))

// Traits implements enum.Enum.
func (MySQLDataTypesSupport) Traits() *enum.Traits[MySQLDataTypesSupport] {
	return mysqlDataTypesSupportTraits
}

// MySQLDataTypesSupportField is the setting type of mysql_datatypes_support_level.
type MySQLDataTypesSupportField = setting.MultiEnumField[MySQLDataTypesSupport]
