package services

// Result is one branch of the accessor's output contract. Every invocation
// produces exactly one Result, which is marshalled to a single JSON line on
// stdout. Recoverable problems (bad arguments, unknown action, lookup miss)
// are Results too; only storage failures surface as errors.
type Result interface {
	isResult()
}

// Remembered reports a successful upsert.
type Remembered struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

// Found carries the stored value for a get hit.
type Found struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// NotFound reports a get miss.
type NotFound struct {
	Error string `json:"error"`
	Key   string `json:"key"`
}

// Deleted reports a delete, whether or not a row matched.
type Deleted struct {
	Status string `json:"status"`
	Key    string `json:"key"`
}

// Listing carries every record belonging to one agent. Memories is never
// nil, so an agent without records serializes as {"memories":[]}.
type Listing struct {
	Memories []Entry `json:"memories"`
}

type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Error reports a recoverable user error such as missing arguments or an
// unknown action.
type Error struct {
	Message string `json:"error"`
}

func (Remembered) isResult() {}
func (Found) isResult()      {}
func (NotFound) isResult()   {}
func (Deleted) isResult()    {}
func (Listing) isResult()    {}
func (Error) isResult()      {}
