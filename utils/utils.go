package utils

type Order uint8

const (
	DescOrder Order = iota
	AscOrder
)

func (o Order) String() string {
	if o == DescOrder {
		return "desc"
	}
	return "asc"
}

// ParseOrder accepts "asc" and "desc"; anything else is ascending.
func ParseOrder(s string) Order {
	if s == "desc" {
		return DescOrder
	}
	return AscOrder
}

func GetZero[T any]() T {
	var result T
	return result
}
