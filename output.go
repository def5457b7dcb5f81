package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/NickyBoy89/methodmap/methodid"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// methodRecord is the YAML form of an identifier
type methodRecord struct {
	Identity    string   `yaml:"identity"`
	JNI         string   `yaml:"jni"`
	Feature     string   `yaml:"feature"`
	Class       string   `yaml:"class"`
	Method      string   `yaml:"method,omitempty"`
	Constructor bool     `yaml:"constructor,omitempty"`
	Parameters  []string `yaml:"parameters"`
	Return      string   `yaml:"return,omitempty"`
}

type report struct {
	Methods    []methodRecord      `yaml:"methods"`
	Duplicates map[string][]string `yaml:"duplicates,omitempty"`
}

func newMethodRecord(id *methodid.Identifier) methodRecord {
	return methodRecord{
		Identity:    id.String(),
		JNI:         id.JNISignature(),
		Feature:     id.OriginFeature,
		Class:       id.QualifiedClassName(),
		Method:      id.MethodName,
		Constructor: id.Constructor,
		Parameters:  id.ParameterTypes,
		Return:      id.ReturnType,
	}
}

// writeReport prints the identifiers in the given format. When dups is not
// nil, the duplicated signatures are listed after them.
func writeReport(w io.Writer, format string, ids []*methodid.Identifier, dups map[string][]string) error {
	switch format {
	case FormatYAML:
		r := report{Methods: make([]methodRecord, len(ids)), Duplicates: dups}
		for ind, id := range ids {
			r.Methods[ind] = newMethodRecord(id)
		}

		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	case FormatIdentity, FormatJNI:
		for _, id := range ids {
			line := id.String()
			if format == FormatJNI {
				line = id.JNISignature()
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		if dups != nil {
			return writeDuplicates(w, dups)
		}
		return nil
	}
	panic(fmt.Sprintf("unknown output format %q", format))
}

func writeDuplicates(w io.Writer, dups map[string][]string) error {
	if _, err := fmt.Fprintf(w, "\n# %d signatures contributed by more than one feature\n", len(dups)); err != nil {
		return err
	}

	signatures := make([]string, 0, len(dups))
	for sig := range dups {
		signatures = append(signatures, sig)
	}
	slices.Sort(signatures)
	for _, sig := range signatures {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", sig, strings.Join(dups[sig], ",")); err != nil {
			return err
		}
	}
	return nil
}
