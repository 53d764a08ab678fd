package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/emersion/go-icalprop"
)

func main() {
	var versionStr string
	flag.StringVar(&versionStr, "version", "2.0", "iCalendar version to validate against")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [options...] [file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	version, err := icalprop.ParseVersion(versionStr)
	if err != nil {
		log.Fatal(err)
	}

	f := os.Stdin
	if path := flag.Arg(0); path != "" {
		f, err = os.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	registry := icalprop.DefaultRegistry()
	scanner := bufio.NewScanner(f)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		name, params, value, err := splitContentLine(line)
		if err != nil {
			log.Printf("line %v: %v", n, err)
			continue
		}

		m, ok := registry.Get(name)
		if !ok {
			log.Printf("line %v: unknown property %q", n, name)
			continue
		}

		result, err := m.ParseText(value, params)
		if err != nil {
			log.Printf("line %v: %v", n, err)
			continue
		}
		for _, w := range result.Warnings() {
			fmt.Printf("line %v: %v: %v\n", n, m.PropertyName(), w)
		}
		for _, w := range icalprop.Validate(result.Value(), nil, version) {
			fmt.Printf("line %v: %v: %v\n", n, m.PropertyName(), w)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}

// splitContentLine splits an unfolded content line into its name, parameter
// and value sections. Parameter values may be double-quoted to contain ';',
// ',' or ':' (RFC 5545 section 3.1).
func splitContentLine(line string) (name string, params icalprop.Params, value string, err error) {
	sections := []string{}
	start := 0
	sep := -1
	inQuotes := false
	for i := 0; i < len(line) && sep < 0; i++ {
		switch line[i] {
		case '"':
			inQuotes = !inQuotes
		case ';':
			if !inQuotes {
				sections = append(sections, line[start:i])
				start = i + 1
			}
		case ':':
			if !inQuotes {
				sep = i
			}
		}
	}
	if sep < 0 {
		return "", nil, "", fmt.Errorf("missing ':' in content line")
	}
	sections = append(sections, line[start:sep])
	value = line[sep+1:]

	name = sections[0]
	if name == "" {
		return "", nil, "", fmt.Errorf("missing property name in content line")
	}

	params = make(icalprop.Params)
	for _, s := range sections[1:] {
		k, v, ok := strings.Cut(s, "=")
		if !ok {
			return "", nil, "", fmt.Errorf("malformed parameter %q", s)
		}
		for _, pv := range strings.Split(v, ",") {
			params.Add(k, strings.Trim(pv, `"`))
		}
	}
	return name, params, value, nil
}
