package model

// SecurityCodeKind tells which identification scheme a security code uses.
type SecurityCodeKind string

const (
	SecurityCodeISIN  SecurityCodeKind = "ISIN"
	SecurityCodeCUSIP SecurityCodeKind = "CUSIP"
)

// Security identifies one instrument. The same value type is used on order
// commands, execution fills and security-list rows.
type Security struct {
	Code string
	Kind SecurityCodeKind
}
