package records

import (
	"strconv"

	"github.com/hasbyte1/go-stream-utils/stream"
	"github.com/hasbyte1/go-stream-utils/strs"
)

func userAge(u *User) int { return u.Age }

func userName(u *User) string { return u.Name }

// NamesOlderThan returns the names of the users strictly older than age, in
// input order.
func NamesOlderThan(users []*User, age int) []string {
	older := stream.From(users).Filter(func(u *User) bool { return u.Age > age })
	return stream.Map(older, userName).ToSlice()
}

// SortByAge returns the users ordered from youngest to oldest. Users of the
// same age keep their input order.
func SortByAge(users []*User) []*User {
	return stream.SortedBy(stream.From(users), userAge).ToSlice()
}

// Oldest returns the user with the highest age. The first of several users
// of the same age wins. It reports false for an empty slice.
func Oldest(users []*User) (*User, bool) {
	return stream.From(users).Max(func(a, b *User) bool { return a.Age < b.Age })
}

// TotalHobbies counts the hobbies of all users, duplicates included.
func TotalHobbies(users []*User) int {
	return stream.Sum(stream.Map(stream.From(users), func(u *User) int { return len(u.Hobbies) }))
}

// StampBirthdates sets every user's Birthdate to "<age> MM YYYY" and returns
// users itself, not a copy.
func StampBirthdates(users []*User) []*User {
	stream.From(users).ForEach(func(u *User) {
		u.Birthdate = strconv.Itoa(u.Age) + " MM YYYY"
	})
	return users
}

// GroupByBirthYear groups the users by BirthYear, keeping input order in
// each group.
func GroupByBirthYear(users []*User) map[int][]*User {
	return stream.GroupBy(stream.From(users), func(u *User) int { return u.BirthYear })
}

// NamesByLength returns the user names ordered from shortest to longest,
// counting runes. Names of equal length keep their input order.
func NamesByLength(users []*User) []string {
	return strs.SortByLength(stream.Map(stream.From(users), userName).ToSlice())
}

// InCity returns the persons living in city. The match is exact and case
// sensitive.
func InCity(persons []Person, city string) []Person {
	return stream.From(persons).Filter(func(p Person) bool { return p.City == city }).ToSlice()
}
