package records

import (
	"fmt"
	"time"
)

// User is a person with an age and a list of hobbies.
type User struct {
	Name string
	Age  int

	// BirthYear is the calendar year of construction minus Age. It is not
	// updated if Age changes later.
	BirthYear int

	// Hobbies keeps insertion order and may hold duplicates.
	Hobbies []string

	// Birthdate is empty until set by [StampBirthdates].
	Birthdate string
}

// NewUser returns a user with the given name and age, born in the current
// year minus age.
func NewUser(name string, age int) *User {
	return NewUserAt(name, age, time.Now())
}

// NewUserAt is like [NewUser] but derives BirthYear from now.
func NewUserAt(name string, age int, now time.Time) *User {
	return &User{
		Name:      name,
		Age:       age,
		BirthYear: now.Year() - age,
		Hobbies:   []string{},
	}
}

// AddHobbies appends hobbies in order.
func (u *User) AddHobbies(hobbies ...string) {
	u.Hobbies = append(u.Hobbies, hobbies...)
}

// String formats the user as "Name (Age)".
func (u *User) String() string {
	return fmt.Sprintf("%s (%d)", u.Name, u.Age)
}

// Person is a name and the city they live in.
type Person struct {
	Name string
	City string
}
