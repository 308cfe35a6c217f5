// Package emit turns a resolved Program into timer-gated command text. Every
// timed statement becomes one guarded line; the output for a given Program
// and name pair is byte-identical across runs.
package emit

import (
	"fmt"
	"strings"

	"github.com/dispa-lang/dispa/pkg/types"
)

// Header is prepended to every generated mcfunction file.
const Header = "# Generated by dispa. Do not edit; edit the .dspa source instead.\n"

// File renders the full mcfunction body for one compiled file. Wait
// statements advance a running delay accumulator that shifts every following
// statement (the end terminator included); they emit nothing themselves.
func File(prog *types.Program, object, animation string) string {
	g := generator{object: object, animation: animation}
	var lines []string
	var waited uint32

	for _, stmt := range prog.Statements {
		switch s := stmt.(type) {
		case types.ObjectName:
			// Naming was already extracted; nothing to emit.
		case types.Wait:
			waited += s.Ticks
		case types.Translate:
			lines = append(lines, g.transform(s.Entity, s.Delay+waited, s.Duration, s.Translation.Payload()))
		case types.Rotate:
			lines = append(lines, g.transform(s.Entity, s.Delay+waited, s.Duration, s.Rotation.Payload()))
		case types.ScaleTo:
			lines = append(lines, g.transform(s.Entity, s.Delay+waited, s.Duration, s.Scale.Payload()))
		case types.Spawn:
			lines = append(lines, g.spawn(s, s.Delay+waited))
		case types.Item:
			lines = append(lines, g.merge(s.Entity, s.Delay+waited,
				fmt.Sprintf("run item replace entity @s contents with %s", s.Item)))
		case types.SetBlock:
			lines = append(lines, g.merge(s.Entity, s.Delay+waited,
				fmt.Sprintf("run data merge entity @s {%s}", blockPayload(s.Block))))
		case types.Text:
			lines = append(lines, g.merge(s.Entity, s.Delay+waited,
				fmt.Sprintf("run data merge entity @s {text:%s}", s.Text)))
		case types.Teleport:
			lines = append(lines, g.teleport(s, s.Delay+waited))
		case types.Raw:
			lines = append(lines, g.raw(s, s.Delay+waited))
		case types.End:
			lines = append(lines, g.reset(s.Delay+waited)...)
		}
	}

	lines = append(lines, g.increment())
	return Header + strings.Join(lines, "\n") + "\n"
}

// TriggerLine is the per-file entry appended to the shared tick-dispatch
// function: while the flags counter is non-zero the animation's generated
// function runs every tick.
func TriggerLine(object, animation, namespace, path string) string {
	return fmt.Sprintf("execute if score $%s-%s flags matches 1.. run function %s:%s",
		object, animation, namespace, path)
}

type generator struct {
	object    string
	animation string
}

// score is the scoreboard player holding this animation's counters.
func (g generator) score() string {
	return fmt.Sprintf("$%s-%s", g.object, g.animation)
}

// tag is the entity tag the object uses for one of its entities.
func (g generator) tag(e types.Entity) string {
	return fmt.Sprintf("%s-%s", g.object, e.Name)
}

func (g generator) transform(e types.Entity, delay, duration uint32, payload string) string {
	return fmt.Sprintf(
		"execute as @e[tag=%s] if score %s timer matches %d run data merge entity @s {start_interpolation:0,interpolation_duration:%d,transformation: {%s}}",
		g.tag(e), g.score(), delay, duration, payload)
}

func (g generator) merge(e types.Entity, delay uint32, effect string) string {
	return fmt.Sprintf("execute as @e[tag=%s] if score %s timer matches %d %s",
		g.tag(e), g.score(), delay, effect)
}

func (g generator) spawn(s types.Spawn, delay uint32) string {
	return fmt.Sprintf(
		"execute as @e[tag=%s] at @s if score %s timer matches %d run summon %s ~%s ~%s ~%s {Tags:[\"%s\"]}",
		g.tag(s.Source), g.score(), delay, s.EntityType,
		types.FormatFloat(s.Offset.X), types.FormatFloat(s.Offset.Y), types.FormatFloat(s.Offset.Z),
		g.tag(s.New))
}

func (g generator) teleport(s types.Teleport, delay uint32) string {
	return fmt.Sprintf(
		"execute as @e[tag=%s] at @s if score %s timer matches %d run tp @s ~%s ~%s ~%s",
		g.tag(s.Entity), g.score(), delay,
		types.FormatFloat(s.X), types.FormatFloat(s.Y), types.FormatFloat(s.Z))
}

func (g generator) raw(s types.Raw, delay uint32) string {
	if !s.Delayed {
		return s.Command
	}
	return fmt.Sprintf("execute if score %s timer matches %d run %s", g.score(), delay, s.Command)
}

// reset stops the cycle: once the timer passes the end delay, the flags
// switch goes back to 0 and the timer parks at -1 (so the next enable starts
// the count at tick 0 after one increment).
func (g generator) reset(delay uint32) []string {
	return []string{
		fmt.Sprintf("execute if score %s timer matches %d.. run scoreboard players set %s flags 0",
			g.score(), delay, g.score()),
		fmt.Sprintf("execute if score %s timer matches %d.. run scoreboard players set %s timer -1",
			g.score(), delay, g.score()),
	}
}

// increment is the per-tick step driver, always the file's last line.
func (g generator) increment() string {
	return fmt.Sprintf("scoreboard players add %s timer 1", g.score())
}

func blockPayload(b types.BlockState) string {
	if len(b.State) == 0 {
		return fmt.Sprintf("block_state:{Name:%q}", b.ID)
	}
	var props []string
	for _, entry := range b.State {
		props = append(props, fmt.Sprintf("%s:%q", entry.Key, entry.Value))
	}
	return fmt.Sprintf("block_state:{Name:%q,Properties:{%s}}", b.ID, strings.Join(props, ","))
}
