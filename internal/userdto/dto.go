// Package userdto holds the user transfer object: six fields copied verbatim
// from an input record, without validation or defaults.
//
// Field values keep whatever shape the record had: strings, numbers or
// nested objects such as a picture with several sizes.
package userdto

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Record is the input record. It decodes from JSON or YAML.
type Record struct {
	Picture     any `yaml:"picture"`
	Cell        any `yaml:"cell"`
	Country     any `yaml:"country"`
	Email       any `yaml:"email"`
	Gender      any `yaml:"gender"`
	Coordinates any `yaml:"coordinates"`
}

// UserDto exposes the record's fields unchanged.
type UserDto struct {
	Picture     any `yaml:"picture" json:"picture"`
	Cell        any `yaml:"cell" json:"cell"`
	Country     any `yaml:"country" json:"country"`
	Email       any `yaml:"email" json:"email"`
	Gender      any `yaml:"gender" json:"gender"`
	Coordinates any `yaml:"coordinates" json:"coordinates"`
}

// New copies the record's fields. Absent fields stay nil.
func New(rec Record) UserDto {
	return UserDto{
		Picture:     rec.Picture,
		Gender:      rec.Gender,
		Cell:        rec.Cell,
		Country:     rec.Country,
		Email:       rec.Email,
		Coordinates: rec.Coordinates,
	}
}

// Fields returns the six fields in declaration order, keyed by name.
func (d UserDto) Fields() []Field {
	return []Field{
		{"picture", d.Picture},
		{"cell", d.Cell},
		{"country", d.Country},
		{"email", d.Email},
		{"gender", d.Gender},
		{"coordinates", d.Coordinates},
	}
}

// Field is one named DTO value.
type Field struct {
	Name  string
	Value any
}

// Decode parses a JSON or YAML record and copies it into a UserDto.
func Decode(data []byte) (UserDto, error) {
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return UserDto{}, fmt.Errorf("userdto: cannot decode record: %w", err)
	}
	return New(rec), nil
}
