package types

// Statement is one parsed timeline statement. It is a closed set: every
// implementation lives in this package and the generator switches over all of
// them exhaustively.
type Statement interface {
	stmt()
}

// ObjectName declares the object/animation pair the compiled file is
// namespaced under.
type ObjectName struct {
	Object    string
	Animation string
}

// Wait advances the running delay accumulator by Ticks. It emits no command.
type Wait struct {
	Ticks uint32
}

// Translate interpolates an entity to an absolute position.
type Translate struct {
	Entity      Entity
	Translation Translation
	Delay       uint32
	Duration    uint32
}

// Rotate interpolates an entity to an absolute axis-angle rotation.
type Rotate struct {
	Entity   Entity
	Rotation Rotation
	Delay    uint32
	Duration uint32
}

// ScaleTo interpolates an entity to an absolute scale.
type ScaleTo struct {
	Entity   Entity
	Scale    Scale
	Delay    uint32
	Duration uint32
}

// Spawn summons a new display entity at (optionally offset from) Source.
type Spawn struct {
	Source     Entity
	EntityType string
	New        Entity
	Offset     Translation
	Delay      uint32
}

// Item replaces the displayed item of an item display entity.
type Item struct {
	Entity Entity
	Item   string
	Delay  uint32
}

// BlockState is a block id plus its key=value state list.
type BlockState struct {
	ID    string
	State []StateEntry
}

// StateEntry is one key=value pair of a block state.
type StateEntry struct {
	Key   string
	Value string
}

// SetBlock replaces the displayed block of a block display entity.
type SetBlock struct {
	Entity Entity
	Block  BlockState
	Delay  uint32
}

// Text replaces the displayed text of a text display entity.
type Text struct {
	Entity Entity
	Text   string
	Delay  uint32
}

// Teleport moves an entity relative to its current position.
type Teleport struct {
	Entity  Entity
	X, Y, Z float32
	Delay   uint32
}

// Raw passes a command through verbatim. Delayed raws are gated behind the
// statement's timer value, immediate raws run every tick.
type Raw struct {
	Command string
	Delayed bool
	Delay   uint32
}

// End terminates the animation cycle once the timer reaches Delay.
type End struct {
	Delay uint32
}

func (ObjectName) stmt() {}
func (Wait) stmt()       {}
func (Translate) stmt()  {}
func (Rotate) stmt()     {}
func (ScaleTo) stmt()    {}
func (Spawn) stmt()      {}
func (Item) stmt()       {}
func (SetBlock) stmt()   {}
func (Text) stmt()       {}
func (Teleport) stmt()   {}
func (Raw) stmt()        {}
func (End) stmt()        {}

// Program is the ordered statement sequence of one source file with all block
// markers resolved away. Statement order is execution order.
type Program struct {
	Statements []Statement
}
