// Package replay runs scripted command sequences against a game session
// and checks expectations along the way. Scripts are YAML documents
// validated against an embedded JSON schema.
package replay

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blarbs/internal/config"
	"github.com/vovakirdan/blarbs/internal/core"
)

//go:embed schema.json
var scriptSchemaJSON string

var scriptSchema = jsonschema.MustCompileString("replay.schema.json", scriptSchemaJSON)

// Op is a script step kind.
type Op string

const (
	OpStart   Op = "start"
	OpRestart Op = "restart"
	OpPause   Op = "pause"
	OpMove    Op = "move"
	OpMoves   Op = "moves"
	OpWait    Op = "wait"
	OpRotate  Op = "rotate"
	OpFreeze  Op = "freeze"
	OpThaw    Op = "thaw"
	OpExpect  Op = "expect"
)

// Script is a parsed replay document.
type Script struct {
	Seed    int64  `yaml:"seed"`
	Variant string `yaml:"variant"`
	Chaser  bool   `yaml:"chaser"`
	Steps   []Step `yaml:"steps"`
}

// Step is one script entry. Which fields are set depends on Op.
type Step struct {
	Op     Op
	Dirs   []core.Dir // move, moves
	N      int        // wait
	At     core.Coord // rotate, freeze, thaw
	Expect Expect
	Line   int
}

// Expect holds optional assertions; nil fields are not checked.
type Expect struct {
	Player *config.Point `yaml:"player"`
	Mode   string        `yaml:"mode"`
	Score  *int          `yaml:"score"`
	Boxes  *int          `yaml:"boxes"`
	Frozen *int          `yaml:"frozen"`
	Lives  *int          `yaml:"lives"`
}

// UnmarshalYAML decodes either a bare op name or a single-key mapping.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	s.Line = node.Line

	if node.Kind == yaml.ScalarNode {
		switch op := Op(node.Value); op {
		case OpStart, OpRestart, OpPause:
			s.Op = op
			return nil
		default:
			return fmt.Errorf("line %d: unknown step %q", node.Line, node.Value)
		}
	}

	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: step must be a name or a single-key mapping", node.Line)
	}
	key, val := node.Content[0].Value, node.Content[1]
	s.Op = Op(key)

	switch s.Op {
	case OpMove:
		d, err := core.ParseDir(val.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		s.Dirs = []core.Dir{d}
	case OpMoves:
		for _, r := range val.Value {
			d, err := core.ParseDir(string(r))
			if err != nil {
				return fmt.Errorf("line %d: %w", node.Line, err)
			}
			s.Dirs = append(s.Dirs, d)
		}
	case OpWait:
		return val.Decode(&s.N)
	case OpRotate, OpFreeze, OpThaw:
		var p config.Point
		if err := val.Decode(&p); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		s.At = core.C(p.X(), p.Y())
	case OpExpect:
		return val.Decode(&s.Expect)
	default:
		return fmt.Errorf("line %d: unknown step %q", node.Line, key)
	}
	return nil
}

// String renders the step for reports.
func (s Step) String() string {
	switch s.Op {
	case OpMove, OpMoves:
		parts := make([]string, len(s.Dirs))
		for i, d := range s.Dirs {
			parts[i] = d.String()
		}
		return fmt.Sprintf("%s %s", s.Op, strings.Join(parts, ","))
	case OpWait:
		return fmt.Sprintf("wait %d", s.N)
	case OpRotate, OpFreeze, OpThaw:
		return fmt.Sprintf("%s %v", s.Op, s.At)
	default:
		return string(s.Op)
	}
}

// Parse validates and decodes a replay document.
func Parse(data []byte) (Script, error) {
	sc := Script{Variant: "classic"}
	if err := config.ValidateDocument(scriptSchema, data); err != nil {
		return sc, fmt.Errorf("replay: schema: %w", err)
	}
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return sc, fmt.Errorf("replay: %w", err)
	}
	return sc, nil
}

// Load reads and parses a replay file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("replay: failed to read %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return sc, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}
