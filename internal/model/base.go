package model

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ── Types personnalisés PostgreSQL ──

// JoursSemaine correspond au type PostgreSQL INT[] (jours 0=dimanche … 6=samedi).
// Implémente les interfaces Scanner/Valuer de GORM.
type JoursSemaine []int

// Scan convertit le texte PostgreSQL {1,3,5} en []int.
func (j *JoursSemaine) Scan(src interface{}) error {
	if src == nil {
		*j = nil
		return nil
	}
	var s string
	switch v := src.(type) {
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("JoursSemaine.Scan: type non géré %T", src)
	}
	s = strings.Trim(s, "{}")
	if s == "" {
		*j = JoursSemaine{}
		return nil
	}
	parts := strings.Split(s, ",")
	arr := make(JoursSemaine, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fmt.Errorf("JoursSemaine.Scan: élément invalide %q: %w", p, err)
		}
		arr = append(arr, n)
	}
	*j = arr
	return nil
}

// Value sérialise []int vers le texte PostgreSQL {1,3,5}.
func (j JoursSemaine) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	parts := make([]string, len(j))
	for i, n := range j {
		parts[i] = strconv.Itoa(n)
	}
	return "{" + strings.Join(parts, ",") + "}", nil
}

// ListeTexte correspond au type PostgreSQL TEXT[] (photos du rapport).
type ListeTexte []string

// Scan convertit le littéral PostgreSQL {a,"b,c"} en []string. Les éléments
// entre guillemets peuvent contenir virgules et guillemets échappés.
func (l *ListeTexte) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var s string
	switch v := src.(type) {
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("ListeTexte.Scan: type non géré %T", src)
	}
	s = strings.Trim(s, "{}")
	if s == "" {
		*l = ListeTexte{}
		return nil
	}
	*l = decouperElementsTableau(s)
	return nil
}

// decouperElementsTableau découpe le contenu d'un littéral de tableau en
// respectant les guillemets et l'échappement par barre oblique inverse.
func decouperElementsTableau(s string) ListeTexte {
	var (
		arr        ListeTexte
		courant    strings.Builder
		guillemets bool
		echappe    bool
	)
	for _, r := range s {
		switch {
		case echappe:
			courant.WriteRune(r)
			echappe = false
		case r == '\\':
			echappe = true
		case r == '"':
			guillemets = !guillemets
		case r == ',' && !guillemets:
			arr = append(arr, courant.String())
			courant.Reset()
		default:
			courant.WriteRune(r)
		}
	}
	return append(arr, courant.String())
}

// Value sérialise []string vers le texte PostgreSQL {a,b}.
func (l ListeTexte) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	parts := make([]string, len(l))
	for i, s := range l {
		parts[i] = `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	return "{" + strings.Join(parts, ",") + "}", nil
}

// BaseModel champs d'audit communs
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
