package pulse

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lowfreq/pulsego/proto"
)

// ModuleArgs holds the arguments for LoadModule. String values are
// single-quoted, property lists are deflated and double-quoted, numbers and
// booleans stay bare.
type ModuleArgs map[string]interface{}

// LoadModule loads a server module and returns its index.
func (c *Client) LoadModule(name string, args ModuleArgs) (uint32, error) {
	s, err := args.encode()
	if err != nil {
		return proto.Undefined, err
	}
	var reply proto.LoadModuleReply
	if err := c.c.Request(&proto.LoadModule{Name: name, Args: s}, &reply); err != nil {
		return proto.Undefined, err
	}
	return reply.ModuleIndex, nil
}

// UnloadModule unloads a module by index.
func (c *Client) UnloadModule(index uint32) error {
	return c.c.Request(&proto.UnloadModule{ModuleIndex: index}, nil)
}

func (a ModuleArgs) encode() (string, error) {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteByte('=')
		switch v := a[k].(type) {
		case string:
			b.WriteByte('\'')
			b.WriteString(strings.ReplaceAll(v, "'", `\'`))
			b.WriteByte('\'')
		case proto.PropList:
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(v.Deflate(), `"`, `\"`))
			b.WriteByte('"')
		case bool:
			if v {
				b.WriteString("true")
			} else {
				b.WriteString("false")
			}
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
			fmt.Fprint(&b, v)
		default:
			return "", fmt.Errorf("pulseaudio: module argument %s has unsupported type %T", k, v)
		}
	}
	return b.String(), nil
}
