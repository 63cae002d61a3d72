package domain

// Limits is the configured minimum/maximum pair served by the limits service.
type Limits struct {
	Minimum int `json:"minimum"`
	Maximum int `json:"maximum"`
}

// SomeBean is the three-field value used by the field filtering endpoints.
type SomeBean struct {
	Field1 string `json:"field1"`
	Field2 string `json:"field2"`
	Field3 string `json:"field3"`
}
