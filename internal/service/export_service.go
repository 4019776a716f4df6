package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/model"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/repository"
)

// ── Erreurs métier du module export ──

var (
	ErrExportAucuneActivite = errors.New("aucune activité à exporter pour cet établissement")
	ErrExportGeneration     = errors.New("échec de génération du fichier d'export")
)

// ExportService exports du programme d'activités.
//
// Deux sorties :
//   - Excel (.xlsx) : programme complet d'un établissement, à destination
//     des coordinateurs et des admins
//   - iCalendar (.ics) : flux des activités publiques validées, consommable
//     par les agendas citoyens
type ExportService interface {
	// ExportProgramme exporte le programme d'un établissement en Excel.
	// Renvoie le contenu, un nom de fichier suggéré, et une erreur.
	ExportProgramme(ctx context.Context, acteur Acteur, etablissementID uint) (*bytes.Buffer, string, error)
	// FluxICS génère le calendrier iCalendar des activités publiques
	FluxICS(ctx context.Context, etablissementID *uint) ([]byte, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService crée une instance de ExportService
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// plafond de lignes d'un export, au-delà duquel on tronque
const exportLimiteLignes = 1000

// ═══════════════════════════════════════════════════════════
// ExportProgramme — programme d'un établissement en Excel
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportProgramme(ctx context.Context, acteur Acteur, etablissementID uint) (*bytes.Buffer, string, error) {
	etab, err := s.repo.Etablissement.GetByID(ctx, etablissementID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrEtablissementIntrouvable
		}
		s.logger.Error("Lecture établissement pour export", zap.Error(err))
		return nil, "", err
	}

	portee, err := porteePour(ctx, s.repo.Utilisateur, acteur)
	if err != nil {
		return nil, "", err
	}
	if !portee.Contient(etab.ID) {
		return nil, "", ErrHorsPerimetre
	}

	activites, _, err := s.repo.Activite.List(ctx, &repository.FiltreActivites{
		EtablissementID: &etablissementID,
		Limit:           exportLimiteLignes,
	})
	if err != nil {
		s.logger.Error("Lecture activités pour export", zap.Error(err))
		return nil, "", err
	}
	if len(activites) == 0 {
		return nil, "", ErrExportAucuneActivite
	}

	f := excelize.NewFile()
	defer f.Close()

	feuille := "Programme"
	idx, _ := f.NewSheet(feuille)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(feuille, "A", "A", 12)
	f.SetColWidth(feuille, "B", "B", 40)
	f.SetColWidth(feuille, "C", "D", 10)
	f.SetColWidth(feuille, "E", "E", 18)
	f.SetColWidth(feuille, "F", "F", 22)
	f.SetColWidth(feuille, "G", "H", 14)

	styleEntete, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2F5B7C"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// Ligne de titre
	f.SetCellValue(feuille, "A1", fmt.Sprintf("%s — Programme d'activités", etab.Nom))
	f.MergeCell(feuille, "A1", "H1")
	f.SetCellStyle(feuille, "A1", "A1", styleEntete)

	// En-têtes
	entetes := []string{"Date", "Titre", "Début", "Fin", "Type", "Responsable", "Statut", "Présence"}
	for i, h := range entetes {
		f.SetCellValue(feuille, cellule(colonne(i), 2), h)
	}
	f.SetCellStyle(feuille, "A2", cellule(colonne(len(entetes)-1), 2), styleEntete)

	maintenant := time.Now()
	ligne := 3
	for i := range activites {
		a := &activites[i]
		f.SetCellValue(feuille, cellule("A", ligne), a.Date.Format("2006-01-02"))
		f.SetCellValue(feuille, cellule("B", ligne), a.Titre)
		f.SetCellValue(feuille, cellule("C", ligne), a.HeureDebut)
		f.SetCellValue(feuille, cellule("D", ligne), a.HeureFin)
		f.SetCellValue(feuille, cellule("E", ligne), a.TypeActivite)
		f.SetCellValue(feuille, cellule("F", ligne), a.ResponsableNom)
		f.SetCellValue(feuille, cellule("G", ligne), string(a.StatutEffectif(maintenant)))
		if a.PresenceEffective != nil {
			f.SetCellValue(feuille, cellule("H", ligne), *a.PresenceEffective)
		} else {
			f.SetCellValue(feuille, cellule("H", ligne), "-")
		}
		ligne++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("Écriture du fichier Excel", zap.Error(err))
		return nil, "", ErrExportGeneration
	}

	nomFichier := fmt.Sprintf("programme_%d_%s.xlsx", etab.ID, maintenant.Format("2006-01-02"))
	return buf, nomFichier, nil
}

// ═══════════════════════════════════════════════════════════
// FluxICS — calendrier public au format iCalendar
// ═══════════════════════════════════════════════════════════
//
// Seules les activités publiques validées entrent dans le flux ; le filtre
// est le même que celui de la lecture citoyenne.

func (s *exportService) FluxICS(ctx context.Context, etablissementID *uint) ([]byte, error) {
	activites, _, err := s.repo.Activite.List(ctx, &repository.FiltreActivites{
		EtablissementID:   etablissementID,
		VisiblePublicSeul: true,
		Limit:             exportLimiteLignes,
	})
	if err != nil {
		s.logger.Error("Lecture activités pour flux ICS", zap.Error(err))
		return nil, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//MedAction//Portail Citoyen//FR")

	maintenant := time.Now()
	for i := range activites {
		a := &activites[i]
		ev := cal.AddEvent(fmt.Sprintf("activite-%d@medaction", a.ID))
		ev.SetCreatedTime(a.CreatedAt)
		ev.SetDtStampTime(maintenant)
		ev.SetStartAt(instantActivite(a, a.HeureDebut))
		ev.SetEndAt(instantActivite(a, a.HeureFin))
		ev.SetSummary(a.Titre)
		if a.Description != "" {
			ev.SetDescription(a.Description)
		}
		if lieu := lieuActivite(a); lieu != "" {
			ev.SetLocation(lieu)
		}
	}

	return []byte(cal.Serialize()), nil
}

// instantActivite recompose date + heure (HH:MM) en heure locale
func instantActivite(a *model.ProgrammeActivite, heure string) time.Time {
	h, m := 0, 0
	if t, err := time.Parse("15:04", heure); err == nil {
		h, m = t.Hour(), t.Minute()
	}
	d := a.Date
	return time.Date(d.Year(), d.Month(), d.Day(), h, m, 0, 0, time.Local)
}

func lieuActivite(a *model.ProgrammeActivite) string {
	if a.Lieu != "" {
		return a.Lieu
	}
	if a.Etablissement != nil {
		return a.Etablissement.Nom
	}
	return ""
}

// ── Aides cellules ──

func colonne(idx int) string {
	nom, _ := excelize.ColumnNumberToName(idx + 1)
	return nom
}

func cellule(col string, ligne int) string {
	return fmt.Sprintf("%s%d", col, ligne)
}
