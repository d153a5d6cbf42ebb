package lead

import (
	"fmt"
	"strings"
)

// Stage is one bucket of the fixed, ordered sales pipeline. The zero value is
// not a valid stage; every lead belongs to exactly one of the defined values.
type Stage int

const (
	StageNew Stage = iota + 1
	StageContacted
	StageQualified
	StageProposal
	StageClosed
)

// StageCount is the number of defined stages.
const StageCount = 5

// Stages returns all stages in pipeline order.
func Stages() []Stage {
	return []Stage{StageNew, StageContacted, StageQualified, StageProposal, StageClosed}
}

// IsValid returns true if the stage is one of the defined constants.
func (s Stage) IsValid() bool {
	switch s {
	case StageNew, StageContacted, StageQualified, StageProposal, StageClosed:
		return true
	default:
		return false
	}
}

// Index returns the zero-based pipeline position of the stage, or -1 for an
// invalid stage.
func (s Stage) Index() int {
	if !s.IsValid() {
		return -1
	}
	return int(s) - 1
}

// Slug returns the wire identifier used by the CRM API and the board API.
func (s Stage) Slug() string {
	switch s {
	case StageNew:
		return "novo"
	case StageContacted:
		return "contatado"
	case StageQualified:
		return "qualificado"
	case StageProposal:
		return "proposta"
	case StageClosed:
		return "fechado"
	default:
		return ""
	}
}

// String implements fmt.Stringer and returns the column title.
func (s Stage) String() string {
	switch s {
	case StageNew:
		return "Novo"
	case StageContacted:
		return "Contatado"
	case StageQualified:
		return "Qualificado"
	case StageProposal:
		return "Proposta"
	case StageClosed:
		return "Fechado"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// ParseStage resolves a slug or a column title (case-insensitive) to a Stage.
func ParseStage(v string) (Stage, error) {
	needle := strings.TrimSpace(v)
	for _, s := range Stages() {
		if strings.EqualFold(needle, s.Slug()) || strings.EqualFold(needle, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown stage %q", v)
}

// MarshalText encodes the stage as its slug.
func (s Stage) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid stage %d", int(s))
	}
	return []byte(s.Slug()), nil
}

// UnmarshalText decodes a slug or title.
func (s *Stage) UnmarshalText(b []byte) error {
	parsed, err := ParseStage(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
