package domain

// PersonV1 is the flat-name response shape.
type PersonV1 struct {
	Name string `json:"name"`
}

// Name is a structured person name.
type Name struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// PersonV2 is the structured-name response shape.
type PersonV2 struct {
	Name Name `json:"name"`
}
