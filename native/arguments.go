package native

// Type is the script-level type an argument is declared with
type Type uint8

const (
	TypeAny Type = iota
	TypeNull
	TypeBool
	TypeInt
	TypeFloat
	TypeString
	TypeArray
	TypeObject
	TypeCallable
)

var typeNames = map[Type]string{
	TypeAny:      "mixed",
	TypeNull:     "null",
	TypeBool:     "bool",
	TypeInt:      "int",
	TypeFloat:    "float",
	TypeString:   "string",
	TypeArray:    "array",
	TypeObject:   "object",
	TypeCallable: "callable",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}

	return "unknown"
}

// ParseType converts a type keyword into a Type
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}

	if name == "" || name == "any" {
		return TypeAny, nil
	}

	return TypeAny, errorf(ErrArgumentType, "unknown type %q", name)
}

// Accepts reports whether a value of kind k can be passed for t without coercion
func (t Type) Accepts(k Kind) bool {
	switch t {
	case TypeAny:
		return true
	case TypeNull:
		return k == KindNull
	case TypeBool:
		return k == KindBool
	case TypeInt:
		return k == KindInt
	case TypeFloat:
		return k == KindFloat || k == KindInt
	case TypeString:
		return k == KindString
	case TypeArray:
		return k == KindArray
	case TypeObject, TypeCallable:
		return k == KindObject
	}

	return false
}

// Argument describes one declared parameter of a native method or function
type Argument struct {
	Name        string
	Type        Type
	ClassName   string
	Required    bool
	ByReference bool
	Nullable    bool
}

// ByVal declares an argument passed by value
func ByVal(name string, t Type, required bool) Argument {
	return Argument{Name: name, Type: t, Required: required}
}

// ByRef declares an argument passed by reference
func ByRef(name string, t Type, required bool) Argument {
	return Argument{Name: name, Type: t, Required: required, ByReference: true}
}

// ObjectArg declares an argument that must be an instance of className
func ObjectArg(name, className string, nullable, required bool) Argument {
	return Argument{Name: name, Type: TypeObject, ClassName: className, Nullable: nullable, Required: required}
}

// Arguments is the ordered list of parameters a callable declares
type Arguments []Argument

// Len returns the number of declared arguments
func (a Arguments) Len() int {
	return len(a)
}

// Required returns how many arguments a caller must supply
func (a Arguments) Required() int {
	count := 0
	for _, arg := range a {
		if arg.Required {
			count++
		}
	}

	return count
}

// Check validates the call-site values against the declaration
func (a Arguments) Check(values []Value) error {
	if len(values) < a.Required() || len(values) > len(a) {
		return errorf(ErrArgumentCount, "expected %d to %d, got %d", a.Required(), len(a), len(values))
	}

	for i, v := range values {
		arg := a[i]

		if v.IsEmpty() && (arg.Nullable || !arg.Required) {
			continue
		}

		if !arg.Type.Accepts(v.Kind()) {
			return errorf(ErrArgumentType, "argument %d (%s) must be %s, %s given", i+1, arg.Name, arg.Type, v.Kind())
		}
	}

	return nil
}

func (a Arguments) clone() Arguments {
	if a == nil {
		return nil
	}

	c := make(Arguments, len(a))
	copy(c, a)

	return c
}
