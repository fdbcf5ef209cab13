// Package person provides an immutable value object used as a cache payload.
package person

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Person is an immutable name/age/hobbies record.
// The hobbies slice is copied on the way in and on the way out, so no caller
// can mutate a Person after construction.
type Person struct {
	name    string
	age     int
	hobbies []string
}

// New creates a Person. A nil hobbies slice is stored as empty.
func New(name string, age int, hobbies []string) Person {
	h := make([]string, len(hobbies))
	copy(h, hobbies)
	return Person{name: name, age: age, hobbies: h}
}

func (p Person) Name() string { return p.name }

func (p Person) Age() int { return p.age }

// Hobbies returns a copy of the hobbies list.
func (p Person) Hobbies() []string {
	h := make([]string, len(p.hobbies))
	copy(h, p.hobbies)
	return h
}

// Equal reports structural equality. A Person built from nil hobbies equals
// one built from an empty slice.
func (p Person) Equal(other Person) bool {
	return p.name == other.name &&
		p.age == other.age &&
		slices.Equal(p.hobbies, other.hobbies)
}

func (p Person) String() string {
	return fmt.Sprintf("%s (%d) [%s]", p.name, p.age, strings.Join(p.hobbies, ", "))
}

type wirePerson struct {
	Name    string   `json:"name"`
	Age     int      `json:"age"`
	Hobbies []string `json:"hobbies"`
}

func (p Person) MarshalJSON() ([]byte, error) {
	return json.Marshal(wirePerson{Name: p.name, Age: p.age, Hobbies: p.Hobbies()})
}

func (p *Person) UnmarshalJSON(data []byte) error {
	var w wirePerson
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*p = New(w.Name, w.Age, w.Hobbies)
	return nil
}
