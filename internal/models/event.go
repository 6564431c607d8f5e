package models

import (
	"errors"
	"strings"
)

type EventKind string

const (
	KindView      EventKind = "view"
	KindCompare   EventKind = "compare"
	KindShare     EventKind = "share"
	KindCopyLink  EventKind = "copy_link"
	KindEmbedCopy EventKind = "embed_copy"
)

var EventKinds = []EventKind{KindView, KindCompare, KindShare, KindCopyLink, KindEmbedCopy}

func (k EventKind) Valid() bool {
	for _, known := range EventKinds {
		if k == known {
			return true
		}
	}
	return false
}

type Scope string

const (
	ScopeRanking       Scope = "ranking"
	ScopeComparePais   Scope = "compare_pais"
	ScopeCompareCiudad Scope = "compare_ciudad"
	ScopePais          Scope = "pais"
	ScopeCiudad        Scope = "ciudad"
	ScopeCategoria     Scope = "categoria"
	ScopeTema          Scope = "tema"
	ScopeHome          Scope = "home"
)

var Scopes = []Scope{
	ScopeRanking, ScopeComparePais, ScopeCompareCiudad, ScopePais,
	ScopeCiudad, ScopeCategoria, ScopeTema, ScopeHome,
}

func (s Scope) Valid() bool {
	for _, known := range Scopes {
		if s == known {
			return true
		}
	}
	return false
}

// CompareKind maps a compare scope to the entity kind it pairs.
func (s Scope) CompareKind() (EntityKind, bool) {
	switch s {
	case ScopeComparePais:
		return EntityCountry, true
	case ScopeCompareCiudad:
		return EntityCity, true
	}
	return "", false
}

// MetricEvent is the payload accepted by the ingestion endpoint. It is never stored as a
// record, only folded into counters.
type MetricEvent struct {
	Kind       EventKind `json:"kind" validate:"required,oneof=view compare share copy_link embed_copy"`
	Scope      Scope     `json:"scope" validate:"required,oneof=ranking compare_pais compare_ciudad pais ciudad categoria tema home"`
	SubjectKey string    `json:"slug" validate:"required,max=140,subjectkey"`
}

const (
	subjectSeparator = "|"
	regionQualifier  = "region:"
	yearQualifier    = "anio:"
)

var ErrMalformedSubjectKey = errors.New("malformed subject key")

// SubjectKey is the structured form of base[|region:<r>][|anio:<y>].
type SubjectKey struct {
	Base   string
	Region string
	Year   string
}

func (k SubjectKey) String() string {
	parts := []string{k.Base}
	if k.Region != "" {
		parts = append(parts, regionQualifier+k.Region)
	}
	if k.Year != "" {
		parts = append(parts, yearQualifier+k.Year)
	}
	return strings.Join(parts, subjectSeparator)
}

// ParseSubjectKey splits a compound key. Unknown or repeated qualifiers and empty
// components are rejected so callers can drop keys they cannot fully resolve.
func ParseSubjectKey(raw string) (SubjectKey, error) {
	segments := strings.Split(raw, subjectSeparator)
	key := SubjectKey{Base: segments[0]}
	if key.Base == "" {
		return SubjectKey{}, ErrMalformedSubjectKey
	}

	for _, segment := range segments[1:] {
		switch {
		case strings.HasPrefix(segment, regionQualifier) && key.Region == "":
			key.Region = strings.TrimPrefix(segment, regionQualifier)
			if key.Region == "" {
				return SubjectKey{}, ErrMalformedSubjectKey
			}
		case strings.HasPrefix(segment, yearQualifier) && key.Year == "":
			key.Year = strings.TrimPrefix(segment, yearQualifier)
			if key.Year == "" {
				return SubjectKey{}, ErrMalformedSubjectKey
			}
		default:
			return SubjectKey{}, ErrMalformedSubjectKey
		}
	}
	return key, nil
}
