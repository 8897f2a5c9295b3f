package leveldata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/automoto/mazerunner/shared/gamemath"
)

var coordKey = regexp.MustCompile(`^([+-]?\d+)\s*,\s*([+-]?\d+)$`)

// maxLineLength bounds a level line; longer lines are skipped.
const maxLineLength = 64 * 1024

// Parse reads a level in key=value form. Blank lines and lines starting
// with '#' or '!' are ignored. Coordinate keys ("c,r") carry a
// comma-separated stack of tile codes; every other key is a property.
// Malformed and over-long lines and codes are logged and skipped. The only
// error returned is a read failure.
func Parse(r io.Reader) (*MapData, error) {
	data, err := parse(r)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return data, nil
}

// ParseString parses level text held in memory. It never returns nil.
func ParseString(s string) *MapData {
	data, _ := parse(strings.NewReader(s))
	return data
}

// parse always returns the lines read so far, even alongside an error.
func parse(r io.Reader) (*MapData, error) {
	data := newMapData()
	br := bufio.NewReader(r)
	lineNo := 0
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lineNo++
			if len(line) > maxLineLength {
				log.Printf("Warning: leveldata: line %d: %d bytes long, skipped", lineNo, len(line))
				data.Skipped++
			} else {
				parseLine(data, lineNo, strings.TrimRight(line, "\r\n"))
			}
		}
		if errors.Is(err, io.EOF) {
			return data, nil
		}
		if err != nil {
			return data, err
		}
	}
}

// ParseFile parses the level at path within fsys.
func ParseFile(fsys fs.FS, path string) (*MapData, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", path, err)
	}
	defer f.Close()

	data, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse level %s: %w", path, err)
	}
	return data, nil
}

func parseLine(data *MapData, lineNo int, line string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "!") {
		return
	}
	if !strings.Contains(line, "=") {
		log.Printf("Warning: leveldata: line %d: no '=' in %q, skipped", lineNo, line)
		data.Skipped++
		return
	}
	parts := strings.Split(line, "=")
	if len(parts) != 2 {
		log.Printf("Warning: leveldata: line %d: expected one '=' in %q, skipped", lineNo, line)
		data.Skipped++
		return
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		log.Printf("Warning: leveldata: line %d: empty key, skipped", lineNo)
		data.Skipped++
		return
	}

	m := coordKey.FindStringSubmatch(key)
	if m == nil {
		data.Properties[key] = value
		return
	}

	col, errC := strconv.Atoi(m[1])
	row, errR := strconv.Atoi(m[2])
	if errC != nil || errR != nil {
		log.Printf("Warning: leveldata: line %d: coordinate %q out of range, skipped", lineNo, key)
		data.Skipped++
		return
	}
	cell := gamemath.Cell{Col: col, Row: row}
	for _, tok := range strings.Split(value, ",") {
		tok = strings.TrimSpace(tok)
		code, err := strconv.Atoi(tok)
		if err != nil || code < 0 {
			log.Printf("Warning: leveldata: line %d: invalid tile code %q at %s, skipped", lineNo, tok, cell)
			data.Skipped++
			continue
		}
		data.add(cell, code)
	}
}
