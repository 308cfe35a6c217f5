package emit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dispa-lang/dispa/pkg/types"
)

func body(t *testing.T, out string) []string {
	t.Helper()
	require.True(t, strings.HasPrefix(out, Header))
	require.True(t, strings.HasSuffix(out, "\n"))
	return strings.Split(strings.TrimSuffix(strings.TrimPrefix(out, Header), "\n"), "\n")
}

func TestFileTranslate(t *testing.T) {
	prog := &types.Program{Statements: []types.Statement{
		types.ObjectName{Object: "test", Animation: "test"},
		types.Translate{
			Entity:      types.Entity{Name: "base"},
			Translation: types.Translation{X: 1},
			Delay:       10,
			Duration:    20,
		},
		types.End{Delay: 40},
	}}

	lines := body(t, File(prog, "test", "test"))
	assert.Equal(t, []string{
		"execute as @e[tag=test-base] if score $test-test timer matches 10 run data merge entity @s {start_interpolation:0,interpolation_duration:20,transformation: {translation: [1f,0f,0f]}}",
		"execute if score $test-test timer matches 40.. run scoreboard players set $test-test flags 0",
		"execute if score $test-test timer matches 40.. run scoreboard players set $test-test timer -1",
		"scoreboard players add $test-test timer 1",
	}, lines)
}

func TestFileRotateAndScale(t *testing.T) {
	prog := &types.Program{Statements: []types.Statement{
		types.Rotate{
			Entity:   types.Entity{Name: "lid"},
			Rotation: types.Rotation{Axis: [3]float32{0, 1, 0}, Angle: 90},
			Delay:    5,
			Duration: 10,
		},
		types.ScaleTo{
			Entity: types.Entity{Name: "lid"},
			Scale:  types.Scale{X: 2, Y: 2, Z: 2},
			Delay:  5,
		},
		types.End{Delay: 20},
	}}

	lines := body(t, File(prog, "chest", "open"))
	assert.Equal(t,
		"execute as @e[tag=chest-lid] if score $chest-open timer matches 5 run data merge entity @s {start_interpolation:0,interpolation_duration:10,transformation: {left_rotation: [0.70710677f,0f,0.70710677f,0f]}}",
		lines[0])
	assert.Equal(t,
		"execute as @e[tag=chest-lid] if score $chest-open timer matches 5 run data merge entity @s {start_interpolation:0,interpolation_duration:0,transformation: {scale: [2f,2f,2f]}}",
		lines[1])
}

func TestFileWaitShiftsFollowingStatements(t *testing.T) {
	prog := &types.Program{Statements: []types.Statement{
		types.Translate{Entity: types.Entity{Name: "a"}, Delay: 10},
		types.Wait{Ticks: 15},
		types.Translate{Entity: types.Entity{Name: "a"}, Delay: 10},
		types.Wait{Ticks: 5},
		types.End{Delay: 30},
	}}

	lines := body(t, File(prog, "o", "a"))
	assert.Contains(t, lines[0], "timer matches 10 ")
	assert.Contains(t, lines[1], "timer matches 25 ")
	// The end delay absorbs every preceding wait.
	assert.Contains(t, lines[2], "timer matches 50..")
}

func TestFileSpawn(t *testing.T) {
	prog := &types.Program{Statements: []types.Statement{
		types.Spawn{
			Source:     types.Entity{Name: "base"},
			EntityType: "block_display",
			New:        types.Entity{Name: "lid"},
			Offset:     types.Translation{X: 0.5, Y: 1},
			Delay:      3,
		},
		types.End{Delay: 10},
	}}

	lines := body(t, File(prog, "chest", "build"))
	assert.Equal(t,
		`execute as @e[tag=chest-base] at @s if score $chest-build timer matches 3 run summon block_display ~0.5 ~1 ~0 {Tags:["chest-lid"]}`,
		lines[0])
}

func TestFileItemBlockText(t *testing.T) {
	prog := &types.Program{Statements: []types.Statement{
		types.Item{Entity: types.Entity{Name: "hand"}, Item: "minecraft:diamond", Delay: 1},
		types.SetBlock{
			Entity: types.Entity{Name: "door"},
			Block: types.BlockState{ID: "oak_door", State: []types.StateEntry{
				{Key: "half", Value: "upper"},
				{Key: "open", Value: "true"},
			}},
			Delay: 2,
		},
		types.SetBlock{Entity: types.Entity{Name: "floor"}, Block: types.BlockState{ID: "stone"}, Delay: 3},
		types.Text{Entity: types.Entity{Name: "sign"}, Text: `'{"text":"hi"}'`, Delay: 4},
		types.End{Delay: 5},
	}}

	lines := body(t, File(prog, "o", "a"))
	assert.Equal(t,
		"execute as @e[tag=o-hand] if score $o-a timer matches 1 run item replace entity @s contents with minecraft:diamond",
		lines[0])
	assert.Equal(t,
		`execute as @e[tag=o-door] if score $o-a timer matches 2 run data merge entity @s {block_state:{Name:"oak_door",Properties:{half:"upper",open:"true"}}}`,
		lines[1])
	assert.Equal(t,
		`execute as @e[tag=o-floor] if score $o-a timer matches 3 run data merge entity @s {block_state:{Name:"stone"}}`,
		lines[2])
	assert.Equal(t,
		`execute as @e[tag=o-sign] if score $o-a timer matches 4 run data merge entity @s {text:'{"text":"hi"}'}`,
		lines[3])
}

func TestFileTeleport(t *testing.T) {
	prog := &types.Program{Statements: []types.Statement{
		types.Teleport{Entity: types.Entity{Name: "base"}, X: 1, Y: -0.5, Z: 0, Delay: 7},
		types.End{Delay: 10},
	}}

	lines := body(t, File(prog, "o", "a"))
	assert.Equal(t,
		"execute as @e[tag=o-base] at @s if score $o-a timer matches 7 run tp @s ~1 ~-0.5 ~0",
		lines[0])
}

func TestFileRawCommands(t *testing.T) {
	prog := &types.Program{Statements: []types.Statement{
		types.Raw{Command: "say hello", Delayed: true, Delay: 12},
		types.Raw{Command: "particle flame ~ ~ ~", Delayed: false},
		types.End{Delay: 20},
	}}

	lines := body(t, File(prog, "o", "a"))
	assert.Equal(t, "execute if score $o-a timer matches 12 run say hello", lines[0])
	assert.Equal(t, "particle flame ~ ~ ~", lines[1])
}

func TestFileDeterministic(t *testing.T) {
	prog := &types.Program{Statements: []types.Statement{
		types.Translate{Entity: types.Entity{Name: "a"}, Delay: 1},
		types.End{Delay: 2},
	}}
	assert.Equal(t, File(prog, "o", "a"), File(prog, "o", "a"))
}

func TestFileIncrementIsLast(t *testing.T) {
	prog := &types.Program{Statements: []types.Statement{types.End{Delay: 0}}}
	lines := body(t, File(prog, "o", "a"))
	assert.Equal(t, "scoreboard players add $o-a timer 1", lines[len(lines)-1])
}

func TestTriggerLine(t *testing.T) {
	assert.Equal(t,
		"execute if score $chest-open flags matches 1.. run function de:objects/chest/open",
		TriggerLine("chest", "open", "de", "objects/chest/open"))
}
