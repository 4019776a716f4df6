package dto

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErreurChamp erreur de validation rattachée à un champ de la requête
type ErreurChamp struct {
	Champ   string `json:"champ"`
	Message string `json:"message"`
}

// valide instance partagée du validateur, configurée pour rapporter
// les noms de champs tels qu'ils apparaissent dans le JSON.
var valide = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// erreursDepuisValidator convertit les erreurs du validateur en liste {champ, message}
func erreursDepuisValidator(err error) []ErreurChamp {
	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return []ErreurChamp{{Champ: "", Message: "requête invalide"}}
	}
	erreurs := make([]ErreurChamp, 0, len(ves))
	for _, fe := range ves {
		erreurs = append(erreurs, ErreurChamp{Champ: fe.Field(), Message: messagePour(fe)})
	}
	return erreurs
}

func messagePour(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "ce champ est obligatoire"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("doit contenir au moins %s caractères", fe.Param())
		}
		return fmt.Sprintf("doit être supérieur ou égal à %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("doit contenir au plus %s caractères", fe.Param())
		}
		return fmt.Sprintf("doit être inférieur ou égal à %s", fe.Param())
	case "gt":
		return fmt.Sprintf("doit être strictement supérieur à %s", fe.Param())
	case "email":
		return "adresse e-mail invalide"
	default:
		return "valeur invalide"
	}
}

// ── Formats temporels ──

var (
	formatDate  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	formatHeure = regexp.MustCompile(`^([01]?\d|2[0-3])(:[0-5]\d)?$`)
)

// HeureValide vérifie le format d'heure accepté : "H" ou "HH:MM"
func HeureValide(h string) bool {
	return formatHeure.MatchString(h)
}

// NormaliserHeure ramène "H", "HH" ou "H:MM" à la forme canonique "HH:MM"
func NormaliserHeure(h string) string {
	parties := strings.SplitN(h, ":", 2)
	minutes := "00"
	if len(parties) == 2 {
		minutes = parties[1]
	}
	heures := parties[0]
	if len(heures) == 1 {
		heures = "0" + heures
	}
	return heures + ":" + minutes
}

// minutesDepuisMinuit convertit une heure normalisée en minutes (comparaison d'ordre)
func minutesDepuisMinuit(h string) int {
	n := NormaliserHeure(h)
	return int(n[0]-'0')*600 + int(n[1]-'0')*60 + int(n[3]-'0')*10 + int(n[4]-'0')
}
