package validator

var (
	ToString = toString
	ToNumber = toNumber
	IsEmpty  = isEmpty
)
