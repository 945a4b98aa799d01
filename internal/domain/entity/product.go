package entity

// Product is an entry of the system-wide catalog (Rice, Wheat, Sugar...).
type Product struct {
	ID   string
	Name string
}
