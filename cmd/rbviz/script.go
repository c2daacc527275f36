package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	rbtree "github.com/magicsystems/immutable-red-black-tree"
)

type opKind string

const (
	opAdd    opKind = "add"
	opRemove opKind = "remove"
	opGet    opKind = "get"
)

// op is one parsed script line.
type op struct {
	line  int
	kind  opKind
	key   int
	value string
}

// parseScript reads one operation per line:
//
//	add <key> <value>
//	remove <key>
//	get <key>
//
// Blank lines and lines starting with # are skipped. The value of add is the
// rest of the line and may contain spaces.
func parseScript(r io.Reader) ([]op, error) {
	var ops []op
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, errors.Errorf("line %d: expected an operation and a key, got %q", lineNo, line)
		}
		key, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: bad key", lineNo)
		}

		o := op{line: lineNo, kind: opKind(fields[0]), key: key}
		switch o.kind {
		case opAdd:
			if len(fields) < 3 {
				return nil, errors.Errorf("line %d: add needs a value", lineNo)
			}
			// Keep inner spacing of the value as written.
			rest := strings.TrimSpace(line[len(fields[0]):])
			o.value = strings.TrimSpace(rest[len(fields[1]):])
		case opRemove, opGet:
			if len(fields) != 2 {
				return nil, errors.Errorf("line %d: %s takes only a key", lineNo, o.kind)
			}
		default:
			return nil, errors.Errorf("line %d: unknown operation %q", lineNo, fields[0])
		}
		ops = append(ops, o)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading script")
	}
	return ops, nil
}

// replay applies ops to an empty tree and returns every version produced,
// starting with the empty one. get does not create a version.
func replay(ops []op, log zerolog.Logger) []rbtree.Tree[int, string] {
	versions := []rbtree.Tree[int, string]{rbtree.New[int, string]()}
	for _, o := range ops {
		current := versions[len(versions)-1]
		switch o.kind {
		case opAdd:
			current = current.Add(o.key, o.value)
		case opRemove:
			current = current.Remove(o.key)
		case opGet:
			value, ok := current.Get(o.key)
			log.Info().
				Int("line", o.line).
				Int("key", o.key).
				Bool("found", ok).
				Str("value", value).
				Int("version", len(versions)-1).
				Msg("get")
			continue
		}
		versions = append(versions, current)
		log.Debug().
			Int("line", o.line).
			Str("op", string(o.kind)).
			Int("key", o.key).
			Int("version", len(versions)-1).
			Int("size", current.Size()).
			Msg("applied")
	}
	return versions
}
