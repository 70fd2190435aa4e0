package authform

type Field string

const (
	FieldFullName        Field = "fullName"
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

// AllFields lists every form field in display order.
var AllFields = []Field{FieldFullName, FieldEmail, FieldPassword, FieldConfirmPassword}

type Values map[Field]string

func (v Values) clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Errors maps a field to its message. A field missing from the map is valid.
type Errors map[Field]string

func (e Errors) clone() Errors {
	out := make(Errors, len(e))
	for k, msg := range e {
		out[k] = msg
	}
	return out
}

type Mode int

const (
	ModeSignIn Mode = iota
	ModeSignUp
)

type modeDef struct {
	name           string
	fields         []Field
	strongPassword bool
	successMessage string
}

var modeDefs = map[Mode]modeDef{
	ModeSignIn: {
		name:           "signin",
		fields:         []Field{FieldEmail, FieldPassword},
		successMessage: MsgWelcomeBack,
	},
	ModeSignUp: {
		name:           "signup",
		fields:         []Field{FieldFullName, FieldEmail, FieldPassword, FieldConfirmPassword},
		strongPassword: true,
		successMessage: MsgAccountCreated,
	},
}

// ParseMode maps "signup" to ModeSignUp. Anything else is ModeSignIn.
func ParseMode(s string) Mode {
	if s == modeDefs[ModeSignUp].name {
		return ModeSignUp
	}
	return ModeSignIn
}

func (m Mode) def() modeDef {
	if s, ok := modeDefs[m]; ok {
		return s
	}
	return modeDefs[ModeSignIn]
}

func (m Mode) String() string {
	return m.def().name
}

func (m Mode) Toggle() Mode {
	if m == ModeSignUp {
		return ModeSignIn
	}
	return ModeSignUp
}

// Fields returns the fields this mode collects and validates.
func (m Mode) Fields() []Field {
	return m.def().fields
}

func (m Mode) Uses(field Field) bool {
	for _, f := range m.def().fields {
		if f == field {
			return true
		}
	}
	return false
}
