package structure

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/dhana56/protein-contact-networks/internal/core/model"
)

// minAtomColumns is the width needed to reach the end of the z coordinate.
const minAtomColumns = 54

// Parse reads a PDB formatted stream. Reading stops at the first ENDMDL, so
// multi-model files contribute their first model only.
func Parse(r io.Reader) (*Structure, error) {
	s := &Structure{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)

	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if len(line) < 6 {
			if strings.TrimSpace(line) == "END" {
				break
			}
			continue
		}

		// https://www.wwpdb.org/documentation/file-format-content/format33/sect9.html#ATOM
		switch strings.TrimSpace(line[0:6]) {
		case "HEADER":
			if len(line) >= 66 {
				s.Classification = strings.TrimSpace(line[10:50])
				s.ID = strings.TrimSpace(line[62:66])
			}
		case "ATOM":
			atom, err := parseAtom(line, n)
			if err != nil {
				return nil, err
			}
			s.Atoms = append(s.Atoms, atom)
		case "HETATM":
			// HETATM rows never take part in contacts; unreadable ones are skipped.
			atom, err := parseAtom(line, n)
			if err != nil {
				log.Printf("Warning: skipping HETATM record: %v", err)
				continue
			}
			s.HetAtoms = append(s.HetAtoms, atom)
		case "ENDMDL", "END":
			return finish(s)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read: %v", ErrMalformed, err)
	}

	return finish(s)
}

func finish(s *Structure) (*Structure, error) {
	if len(s.Atoms) == 0 {
		return nil, fmt.Errorf("%w: no ATOM records", ErrMalformed)
	}
	return s, nil
}

func parseAtom(line string, n int) (model.AtomRecord, error) {
	var atom model.AtomRecord
	if len(line) < minAtomColumns {
		return atom, fmt.Errorf("%w: line %d: %d columns, coordinates need %d", ErrMalformed, n, len(line), minAtomColumns)
	}

	atom.Serial, _ = strconv.Atoi(strings.TrimSpace(line[6:11]))
	atom.AtomName = strings.TrimSpace(line[12:16])
	atom.AltLoc = strings.TrimSpace(line[16:17])
	atom.ResidueName = strings.TrimSpace(line[17:20])
	atom.ChainID = strings.TrimSpace(line[21:22])
	atom.InsertionCode = strings.TrimSpace(line[26:27])

	var err error
	if atom.ResidueNumber, err = strconv.Atoi(strings.TrimSpace(line[22:26])); err != nil {
		return atom, fmt.Errorf("%w: line %d: residue number: %v", ErrMalformed, n, err)
	}
	if atom.X, err = parseCoord(line[30:38]); err != nil {
		return atom, fmt.Errorf("%w: line %d: x coordinate: %v", ErrMalformed, n, err)
	}
	if atom.Y, err = parseCoord(line[38:46]); err != nil {
		return atom, fmt.Errorf("%w: line %d: y coordinate: %v", ErrMalformed, n, err)
	}
	if atom.Z, err = parseCoord(line[46:54]); err != nil {
		return atom, fmt.Errorf("%w: line %d: z coordinate: %v", ErrMalformed, n, err)
	}

	if len(line) >= 60 {
		atom.Occupancy, _ = strconv.ParseFloat(strings.TrimSpace(line[54:60]), 64)
	}
	if len(line) >= 66 {
		atom.BFactor, _ = strconv.ParseFloat(strings.TrimSpace(line[60:66]), 64)
	}
	if len(line) >= 78 {
		atom.Element = strings.TrimSpace(line[76:78])
	}

	return atom, nil
}

func parseCoord(field string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(field), 64)
}
