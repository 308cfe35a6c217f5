package parser

import (
	"strconv"
	"strings"

	"github.com/dispa-lang/dispa/pkg/lexer"
	"github.com/dispa-lang/dispa/pkg/types"
)

const rawCommandPrefix = '/'

// stmtData carries everything one keyword handler needs: the argument words,
// the resolved timing pair, and enough context to build located errors.
type stmtData struct {
	file types.FileInfo
	buf  lexer.Buffer
	args []string
	set  types.NumberSet

	// explicitDuration is set when the statement itself carried a '%'
	// prefix, as opposed to inheriting the block's duration.
	explicitDuration bool
}

func (d stmtData) errAt(offset int, err error) error {
	return types.NewCompileError(d.file, d.buf.Pos.Add(offset), err)
}

func (d stmtData) err(err error) error {
	return d.errAt(0, err)
}

func (d stmtData) wantArgs(keyword string, n int) error {
	if len(d.args) != n {
		return d.err(&types.ArgumentCountError{Keyword: keyword, Want: n, Got: len(d.args)})
	}
	return nil
}

func (d stmtData) wantArgsAtLeast(keyword string, n int) error {
	if len(d.args) < n {
		return d.err(&types.ArgumentCountError{Keyword: keyword, Want: n, AtLeast: true, Got: len(d.args)})
	}
	return nil
}

// withDuration consumes the optional duration argument transform statements
// may carry after their coordinates. The token uses the same
// absolute-or-relative forms as a coordinate, resolved against the block's
// duration, and cannot be combined with a '%' prefix on the same statement.
func (d stmtData) withDuration(keyword string, base int) (stmtData, error) {
	if len(d.args) == base {
		return d, nil
	}
	if len(d.args) != base+1 {
		return d, d.err(&types.ArgumentCountError{Keyword: keyword, Want: base, Got: len(d.args)})
	}
	if d.explicitDuration {
		return d, d.err(&types.DuplicateNumberError{Type: types.Duration})
	}
	duration, err := parseDuration(d.args[base], d.set.Duration)
	if err != nil {
		return d, d.err(err)
	}
	d.args = d.args[:base]
	d.set.Duration = duration
	return d, nil
}

// parseDuration parses a duration token: a plain tick count, or '~'-relative
// to the enclosing block's duration (a bare '~' keeps it).
func parseDuration(token string, current uint32) (uint32, error) {
	rel, isRelative := strings.CutPrefix(token, "~")
	if !isRelative {
		value, err := strconv.ParseUint(token, 10, 32)
		if err != nil {
			return 0, &types.InvalidIntegerError{Token: token}
		}
		return uint32(value), nil
	}
	if rel == "" {
		return current, nil
	}
	offset, err := strconv.ParseInt(rel, 10, 32)
	if err != nil {
		return 0, &types.InvalidIntegerError{Token: token}
	}
	result := int64(current) + offset
	if result < 0 {
		return 0, &types.InvalidIntegerError{Token: token}
	}
	return uint32(result), nil
}

// parseStatement turns one ';'-terminated buffer into a Statement. A nil
// statement with nil error means the buffer was empty (just a separator).
func (p *Parser) parseStatement(buf lexer.Buffer) (types.Statement, error) {
	text := strings.TrimSpace(strings.TrimSuffix(buf.Text, ";"))
	if text == "" {
		return nil, nil
	}

	set := p.currentScope()

	if text[0] == rawCommandPrefix {
		delayed := len(text) < 2 || text[1] != rawCommandPrefix
		command := strings.TrimLeft(text, string(rawCommandPrefix))
		return types.Raw{Command: command, Delayed: delayed, Delay: set.Delay}, nil
	}

	rec, err := recognizeNumbers(strings.Fields(text), set)
	if err != nil {
		return nil, types.NewCompileError(p.file, buf.Pos, err)
	}

	keyword, err := LookupKeyword(rec.keyword)
	if err != nil {
		return nil, types.NewCompileError(p.file, buf.Pos, err)
	}

	data := stmtData{file: p.file, buf: buf, args: rec.args, set: rec.set}
	for _, n := range rec.explicit {
		if n.Type == types.Duration {
			data.explicitDuration = true
		}
	}

	switch keyword {
	case KwObject:
		return parseObject(data)
	case KwWait:
		return parseWait(data)
	case KwTranslate:
		return p.parseTranslate(data)
	case KwRotate:
		return p.parseRotate(data)
	case KwScale:
		return p.parseScale(data)
	case KwSpawn:
		return parseSpawn(data)
	case KwItem:
		return parseItem(data)
	case KwBlock:
		return parseBlock(data)
	case KwText:
		return parseText(data)
	case KwTeleport:
		return parseTeleport(data)
	case KwEnd:
		return parseEnd(data)
	}
	return nil, types.NewCompileError(p.file, buf.Pos, &types.InvalidKeywordError{Keyword: rec.keyword})
}

func parseObject(data stmtData) (types.Statement, error) {
	if err := data.wantArgs("object", 1); err != nil {
		return nil, err
	}
	argument := data.args[0]
	object, animation := argument, argument
	if idx := strings.IndexByte(argument, ':'); idx >= 0 {
		object, animation = argument[:idx], argument[idx+1:]
		if animation == "" {
			return nil, data.err(&types.MissingAnimationNameError{Argument: argument})
		}
	}
	if !types.ValidName(object) {
		return nil, data.err(&types.InvalidNameError{Kind: "object name", Name: object})
	}
	if !types.ValidName(animation) {
		return nil, data.err(&types.InvalidNameError{Kind: "animation name", Name: animation})
	}
	return types.ObjectName{Object: object, Animation: animation}, nil
}

func parseWait(data stmtData) (types.Statement, error) {
	if err := data.wantArgs("wait", 1); err != nil {
		return nil, err
	}
	ticks, err := strconv.ParseUint(data.args[0], 10, 32)
	if err != nil {
		return nil, data.err(&types.InvalidIntegerError{Token: data.args[0]})
	}
	return types.Wait{Ticks: uint32(ticks)}, nil
}

func (p *Parser) parseTranslate(data stmtData) (types.Statement, error) {
	data, err := data.withDuration("translate", 4)
	if err != nil {
		return nil, err
	}
	entity, err := types.NewEntity(data.args[0])
	if err != nil {
		return nil, data.err(err)
	}
	state := p.entities[entity.Name]
	last := state.Translation
	translation, err := parseVector(data.args[1:4], [3]float32{last.X, last.Y, last.Z})
	if err != nil {
		return nil, data.err(err)
	}
	state.Translation = types.Translation{X: translation[0], Y: translation[1], Z: translation[2]}
	p.entities[entity.Name] = state
	return types.Translate{
		Entity:      entity,
		Translation: state.Translation,
		Delay:       data.set.Delay,
		Duration:    data.set.Duration,
	}, nil
}

func (p *Parser) parseRotate(data stmtData) (types.Statement, error) {
	data, err := data.withDuration("rotate", 3)
	if err != nil {
		return nil, err
	}
	entity, err := types.NewEntity(data.args[0])
	if err != nil {
		return nil, data.err(err)
	}
	axis, err := parseAxis(data.args[1])
	if err != nil {
		return nil, data.err(err)
	}
	state := p.entities[entity.Name]
	angle, err := parseCoordinate(data.args[2], state.Rotation.Angle)
	if err != nil {
		return nil, data.err(err)
	}
	state.Rotation = types.Rotation{Axis: axis, Angle: angle}
	p.entities[entity.Name] = state
	return types.Rotate{
		Entity:   entity,
		Rotation: state.Rotation,
		Delay:    data.set.Delay,
		Duration: data.set.Duration,
	}, nil
}

func (p *Parser) parseScale(data stmtData) (types.Statement, error) {
	data, err := data.withDuration("scale", 4)
	if err != nil {
		return nil, err
	}
	entity, err := types.NewEntity(data.args[0])
	if err != nil {
		return nil, data.err(err)
	}
	state := p.entities[entity.Name]
	last := state.Scale
	scale, err := parseVector(data.args[1:4], [3]float32{last.X, last.Y, last.Z})
	if err != nil {
		return nil, data.err(err)
	}
	state.Scale = types.Scale{X: scale[0], Y: scale[1], Z: scale[2]}
	p.entities[entity.Name] = state
	return types.ScaleTo{
		Entity:   entity,
		Scale:    state.Scale,
		Delay:    data.set.Delay,
		Duration: data.set.Duration,
	}, nil
}

func parseSpawn(data stmtData) (types.Statement, error) {
	if len(data.args) != 3 && len(data.args) != 6 {
		return nil, data.err(&types.ArgumentCountError{Keyword: "spawn", Want: 3, Got: len(data.args)})
	}
	source, err := types.NewEntity(data.args[0])
	if err != nil {
		return nil, data.err(err)
	}
	entityType := data.args[1]
	if !types.ValidEntityType(entityType) {
		return nil, data.err(&types.InvalidEntityTypeError{Type: entityType})
	}
	newEntity, err := types.NewEntity(data.args[2])
	if err != nil {
		return nil, data.err(err)
	}
	var offset types.Translation
	if len(data.args) == 6 {
		vec, err := parseVector(data.args[3:6], [3]float32{})
		if err != nil {
			return nil, data.err(err)
		}
		offset = types.Translation{X: vec[0], Y: vec[1], Z: vec[2]}
	}
	return types.Spawn{
		Source:     source,
		EntityType: entityType,
		New:        newEntity,
		Offset:     offset,
		Delay:      data.set.Delay,
	}, nil
}

func parseItem(data stmtData) (types.Statement, error) {
	if err := data.wantArgsAtLeast("item", 2); err != nil {
		return nil, err
	}
	entity, err := types.NewEntity(data.args[0])
	if err != nil {
		return nil, data.err(err)
	}
	return types.Item{
		Entity: entity,
		Item:   strings.Join(data.args[1:], " "),
		Delay:  data.set.Delay,
	}, nil
}

func parseBlock(data stmtData) (types.Statement, error) {
	if err := data.wantArgsAtLeast("block", 2); err != nil {
		return nil, err
	}
	entity, err := types.NewEntity(data.args[0])
	if err != nil {
		return nil, data.err(err)
	}
	spec := strings.Join(data.args[1:], " ")
	block, err := parseBlockState(spec)
	if err != nil {
		return nil, data.errAt(len(data.args[0]), err)
	}
	return types.SetBlock{Entity: entity, Block: block, Delay: data.set.Delay}, nil
}

// parseBlockState splits "id[key=value,...]" into its id and state entries.
// The bracket is optional, but once opened it must close, and every segment
// needs exactly one '='.
func parseBlockState(spec string) (types.BlockState, error) {
	idx := strings.IndexByte(spec, '[')
	if idx < 0 {
		return types.BlockState{ID: spec}, nil
	}
	id, state := spec[:idx], spec[idx+1:]
	state, ok := strings.CutSuffix(state, "]")
	if !ok {
		return types.BlockState{}, &types.InvalidStateError{State: state}
	}
	var entries []types.StateEntry
	for _, segment := range strings.Split(state, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(segment), "=")
		if !found || key == "" || strings.ContainsRune(value, '=') {
			return types.BlockState{}, &types.InvalidStateError{State: state}
		}
		entries = append(entries, types.StateEntry{Key: key, Value: value})
	}
	return types.BlockState{ID: id, State: entries}, nil
}

func parseText(data stmtData) (types.Statement, error) {
	if err := data.wantArgsAtLeast("text", 2); err != nil {
		return nil, err
	}
	entity, err := types.NewEntity(data.args[0])
	if err != nil {
		return nil, data.err(err)
	}
	return types.Text{
		Entity: entity,
		Text:   strings.Join(data.args[1:], " "),
		Delay:  data.set.Delay,
	}, nil
}

func parseTeleport(data stmtData) (types.Statement, error) {
	if err := data.wantArgs("teleport", 4); err != nil {
		return nil, err
	}
	entity, err := types.NewEntity(data.args[0])
	if err != nil {
		return nil, data.err(err)
	}
	vec, err := parseVector(data.args[1:4], [3]float32{})
	if err != nil {
		return nil, data.err(err)
	}
	return types.Teleport{
		Entity: entity,
		X:      vec[0],
		Y:      vec[1],
		Z:      vec[2],
		Delay:  data.set.Delay,
	}, nil
}

// parseEnd handles the terminator. Its number must be a delay; a bare end
// inherits the enclosing block's delay.
func parseEnd(data stmtData) (types.Statement, error) {
	if err := data.wantArgs("end", 0); err != nil {
		return nil, err
	}
	if data.explicitDuration {
		return nil, data.err(&types.WrongNumberTypeError{Keyword: "end", Want: types.Delay, Got: types.Duration})
	}
	return types.End{Delay: data.set.Delay}, nil
}

// parseCoordinate parses one coordinate token. A '~' prefix makes it relative
// to current; a bare '~' means an offset of zero.
func parseCoordinate(token string, current float32) (float32, error) {
	relative, isRelative := strings.CutPrefix(token, "~")
	if isRelative {
		if relative == "" {
			return current, nil
		}
		offset, err := strconv.ParseFloat(relative, 32)
		if err != nil {
			return 0, &types.InvalidCoordinateError{Token: token}
		}
		return current + float32(offset), nil
	}
	value, err := strconv.ParseFloat(token, 32)
	if err != nil {
		return 0, &types.InvalidCoordinateError{Token: token}
	}
	return float32(value), nil
}

func parseVector(tokens []string, current [3]float32) ([3]float32, error) {
	var out [3]float32
	for i, token := range tokens {
		value, err := parseCoordinate(token, current[i])
		if err != nil {
			return out, err
		}
		out[i] = value
	}
	return out, nil
}

// parseAxis accepts the x/y/z shorthand or a bracketed 3-tuple like
// [0.5,0.5,0].
func parseAxis(token string) ([3]float32, error) {
	switch token {
	case "x":
		return [3]float32{1, 0, 0}, nil
	case "y":
		return [3]float32{0, 1, 0}, nil
	case "z":
		return [3]float32{0, 0, 1}, nil
	}
	inner, ok := strings.CutPrefix(token, "[")
	if !ok {
		return [3]float32{}, &types.InvalidAxisError{Token: token}
	}
	inner, ok = strings.CutSuffix(inner, "]")
	if !ok {
		return [3]float32{}, &types.InvalidAxisError{Token: token}
	}
	parts := strings.Split(strings.ReplaceAll(inner, " ", ""), ",")
	if len(parts) != 3 {
		return [3]float32{}, &types.InvalidAxisError{Token: token}
	}
	var axis [3]float32
	for i, part := range parts {
		value, err := strconv.ParseFloat(part, 32)
		if err != nil {
			return [3]float32{}, &types.InvalidAxisError{Token: token}
		}
		axis[i] = float32(value)
	}
	return axis, nil
}
