package dispatch

// Operation is one of Rebuild, Update, Clean or Audit.
type Operation interface {
	script() string
}

// Rebuild rebuilds the configuration at Path. When Label is nil the
// message doubles as the label source.
type Rebuild struct {
	Path    string
	Host    string
	Label   *string
	Message string
}

// Update refreshes the inputs of the configuration at Path and then
// rebuilds it.
type Update struct {
	Path string
	Host string
}

// Clean collects garbage.
type Clean struct{}

// Audit checks the environment, optionally scoped to Key.
type Audit struct {
	Key string
}

func (Rebuild) script() string { return "rebuild" }
func (Update) script() string  { return "update" }
func (Clean) script() string   { return "clean" }
func (Audit) script() string   { return "audit" }

// updateMessage is the message (and label source) of the rebuild that
// follows an update.
const updateMessage = "update"

// StringPtr is a convenience for populating Rebuild.Label.
func StringPtr(s string) *string { return &s }
