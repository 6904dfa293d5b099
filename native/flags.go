package native

import "strings"

// Flags is a bitmask of access and modifier attributes for a method
type Flags uint32

// the bit values line up with the host's own access flags so they can be passed through untouched
const (
	Static    Flags = 0x01
	Abstract  Flags = 0x02
	Final     Flags = 0x04
	Public    Flags = 0x100
	Protected Flags = 0x200
	Private   Flags = 0x400

	// Visibility masks the three mutually exclusive visibility bits
	Visibility = Public | Protected | Private
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{Public, "public"},
	{Protected, "protected"},
	{Private, "private"},
	{Static, "static"},
	{Abstract, "abstract"},
	{Final, "final"},
}

// NormalizeFlags returns f with Public added when none of Public, Protected or Private is set.
// Every other bit is left as the caller supplied it, and normalizing twice is a no-op.
func NormalizeFlags(f Flags) Flags {
	if f&Visibility == 0 {
		f |= Public
	}

	return f
}

// Has returns true if every bit in other is set
func (f Flags) Has(other Flags) bool {
	return f&other == other
}

// Visibility returns only the visibility bits of f
func (f Flags) Visibility() Flags {
	return f & Visibility
}

// String renders the set bits as space separated keywords, e.g. "public static"
func (f Flags) String() string {
	parts := []string{}

	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}

	return strings.Join(parts, " ")
}

// ParseFlags converts keywords such as "protected" or "final" into a Flags mask
func ParseFlags(names ...string) (Flags, error) {
	var f Flags

outer:
	for _, n := range names {
		for _, fn := range flagNames {
			if strings.EqualFold(strings.TrimSpace(n), fn.name) {
				f |= fn.flag
				continue outer
			}
		}

		return 0, errorf(ErrUnknownFlag, "%q", n)
	}

	return f, nil
}
