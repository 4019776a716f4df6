package service

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AbdessamadProschool/medaction-prod-sub005/config"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/dto"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/model"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/recurrence"
	"github.com/AbdessamadProschool/medaction-prod-sub005/internal/repository"
)

// ActiviteService programmation, cycle de vie et consultation des activités
type ActiviteService struct {
	cfg    *config.APIConfig
	repo   *repository.Repository
	autor  Autorisations
	logger *zap.Logger
}

// NewActiviteService crée le service des activités
func NewActiviteService(cfg *config.APIConfig, repo *repository.Repository, autor Autorisations, logger *zap.Logger) *ActiviteService {
	return &ActiviteService{cfg: cfg, repo: repo, autor: autor, logger: logger}
}

// ── Création ──

// ResultatCreation activité créée et, le cas échéant, ses occurrences
type ResultatCreation struct {
	Activite          *dto.ActiviteResponse
	NombreOccurrences int
}

// Creer valide la requête, contrôle permission et périmètre, puis persiste
// l'activité — et ses occurrences de récurrence — en une transaction.
// L'activité naît toujours en BROUILLON, non visible, non validée, quels
// que soient les drapeaux demandés.
func (s *ActiviteService) Creer(ctx context.Context, acteur Acteur, req *dto.CreerActiviteRequest) (*ResultatCreation, error) {
	if err := erreursValidationSi(req.Valider()); err != nil {
		return nil, err
	}

	ok, err := s.autor.APermission(ctx, acteur, PermissionCreerProgramme)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPermissionRefusee
	}

	// L'existence de l'établissement est vérifiée avant le périmètre :
	// un identifiant inconnu donne 404, pas 403.
	etab, err := s.repo.Etablissement.GetByID(ctx, req.EtablissementID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEtablissementIntrouvable
		}
		return nil, err
	}

	portee, err := porteePour(ctx, s.repo.Utilisateur, acteur)
	if err != nil {
		return nil, err
	}
	if !portee.Contient(etab.ID) {
		return nil, ErrHorsPerimetre
	}

	parent, err := s.construireActivite(acteur, req)
	if err != nil {
		return nil, err
	}

	var occurrences []model.ProgrammeActivite
	if parent.IsRecurrent {
		dates := recurrence.Expand(parent.Date, parent.RecurrencePattern, parent.RecurrenceEndDate, parent.RecurrenceDays)
		occurrences = make([]model.ProgrammeActivite, 0, len(dates))
		for _, d := range dates {
			occurrences = append(occurrences, deriverOccurrence(parent, d))
		}
	}

	if err := s.repo.Activite.CreateAvecOccurrences(ctx, parent, occurrences); err != nil {
		return nil, err
	}

	s.logger.Info("Activité créée",
		zap.Uint("activite_id", parent.ID),
		zap.Uint("etablissement_id", parent.EtablissementID),
		zap.Uint("created_by", acteur.ID),
		zap.Int("occurrences", len(occurrences)),
	)

	rep := versActiviteResponse(parent, time.Now())
	rep.NombreOccurrences = len(occurrences)
	return &ResultatCreation{Activite: rep, NombreOccurrences: len(occurrences)}, nil
}

// construireActivite fabrique le modèle à partir de la requête validée.
// Les champs de gouvernance (statut, visibilité, validation) sont forcés.
func (s *ActiviteService) construireActivite(acteur Acteur, req *dto.CreerActiviteRequest) (*model.ProgrammeActivite, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}

	a := &model.ProgrammeActivite{
		EtablissementID:      req.EtablissementID,
		CreatedBy:            acteur.ID,
		Titre:                req.Titre,
		Description:          req.Description,
		TypeActivite:         req.TypeActivite,
		Date:                 date,
		HeureDebut:           dto.NormaliserHeure(req.HeureDebut),
		HeureFin:             dto.NormaliserHeure(req.HeureFin),
		Lieu:                 req.Lieu,
		ResponsableNom:       req.ResponsableNom,
		ParticipantsAttendus: req.ParticipantsAttendus,

		// Gouvernance : jamais pilotée par l'appelant à la création.
		IsVisiblePublic:  false,
		IsValideParAdmin: false,
		Statut:           model.StatutBrouillon,

		// Le souhait de visibilité est mémorisé ici et ne prend effet
		// qu'à la publication, après validation administrateur.
		VisibilitePubliqueDemandee: true,

		RequireValidation: true,
		IsRecurrent:       req.IsRecurrent,
	}
	if req.IsVisiblePublic != nil {
		a.VisibilitePubliqueDemandee = *req.IsVisiblePublic
	}
	if req.RequireValidation != nil {
		a.RequireValidation = *req.RequireValidation
	}

	if req.IsRecurrent {
		a.RecurrencePattern = req.RecurrencePattern
		a.RecurrenceDays = req.RecurrenceDays
		if req.RecurrenceEndDate != "" {
			fin, err := time.Parse("2006-01-02", req.RecurrenceEndDate)
			if err != nil {
				return nil, err
			}
			a.RecurrenceEndDate = &fin
		}
	}
	return a, nil
}

// deriverOccurrence copie les champs métier du parent sur une date générée.
// L'occurrence porte le drapeau récurrent et le motif du parent, mais ni
// jours ni date de fin : elle ne génère jamais ses propres occurrences,
// l'arbre reste de profondeur 1.
func deriverOccurrence(parent *model.ProgrammeActivite, date time.Time) model.ProgrammeActivite {
	return model.ProgrammeActivite{
		EtablissementID:      parent.EtablissementID,
		CreatedBy:            parent.CreatedBy,
		Titre:                parent.Titre,
		Description:          parent.Description,
		TypeActivite:         parent.TypeActivite,
		Date:                 date,
		HeureDebut:           parent.HeureDebut,
		HeureFin:             parent.HeureFin,
		Lieu:                 parent.Lieu,
		ResponsableNom:       parent.ResponsableNom,
		ParticipantsAttendus: parent.ParticipantsAttendus,
		IsVisiblePublic:      false,
		IsValideParAdmin:     false,
		RequireValidation:    parent.RequireValidation,
		Statut:               model.StatutBrouillon,
		IsRecurrent:          true,
		RecurrencePattern:    parent.RecurrencePattern,

		VisibilitePubliqueDemandee: parent.VisibilitePubliqueDemandee,
	}
}

// ── Consultation ──

// ResultatListe page d'activités projetées selon le rôle
type ResultatListe struct {
	Liste interface{}
	Total int64
	Page  int
	Limit int
	// AucunEtablissement vrai quand un coordinateur ne gère aucun
	// établissement : liste vide assumée, pas une erreur.
	AucunEtablissement bool
}

// Lister recherche paginée. Le périmètre de l'acteur est appliqué d'office :
// un citoyen ne voit que le public validé, un coordinateur que ses
// établissements, un admin tout.
func (s *ActiviteService) Lister(ctx context.Context, acteur Acteur, req *dto.ListeActivitesRequest) (*ResultatListe, error) {
	if err := erreursValidationSi(req.Valider()); err != nil {
		return nil, err
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = s.cfg.LimiteParDefaut
	}
	if limit > s.cfg.LimiteMax {
		limit = s.cfg.LimiteMax
	}

	filtre := &repository.FiltreActivites{
		EtablissementID: req.EtablissementID,
		Statuts:         req.Statuts(),
		Offset:          (page - 1) * limit,
		Limit:           limit,
	}
	if req.DateDebut != "" {
		d, _ := time.Parse("2006-01-02", req.DateDebut)
		filtre.DateDebut = &d
	}
	if req.DateFin != "" {
		d, _ := time.Parse("2006-01-02", req.DateFin)
		filtre.DateFin = &d
	}

	switch acteur.Role {
	case model.RoleAdmin:
		// Aucune restriction de périmètre.
	case model.RoleCoordinateur:
		portee, err := porteePour(ctx, s.repo.Utilisateur, acteur)
		if err != nil {
			return nil, err
		}
		if portee.Vide() {
			return &ResultatListe{Liste: []dto.ActiviteResponse{}, Page: page, Limit: limit, AucunEtablissement: true}, nil
		}
		filtre.EtablissementIDs = portee.EtablissementIDs
	default:
		filtre.VisiblePublicSeul = true
	}

	activites, total, err := s.repo.Activite.List(ctx, filtre)
	if err != nil {
		return nil, err
	}

	return &ResultatListe{
		Liste: projeterActivites(activites, acteur, time.Now()),
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// Obtenir charge une activité et la projette selon le rôle.
// Pour un citoyen, une activité non publique se comporte comme inexistante.
func (s *ActiviteService) Obtenir(ctx context.Context, acteur Acteur, id uint) (interface{}, error) {
	a, err := s.chargerDansPerimetre(ctx, acteur, id)
	if err != nil {
		return nil, err
	}
	return projeterActivite(a, acteur, time.Now()), nil
}

// Occurrences liste les occurrences filles d'une activité récurrente
func (s *ActiviteService) Occurrences(ctx context.Context, acteur Acteur, id uint) (interface{}, error) {
	parent, err := s.chargerDansPerimetre(ctx, acteur, id)
	if err != nil {
		return nil, err
	}
	filles, err := s.repo.Activite.ListByParent(ctx, parent.ID)
	if err != nil {
		return nil, err
	}
	if acteur.Role == model.RoleCitoyen || acteur.EstAnonyme() {
		visibles := filles[:0]
		for _, f := range filles {
			if f.EstVisibleCitoyen() {
				visibles = append(visibles, f)
			}
		}
		filles = visibles
	}
	return projeterActivites(filles, acteur, time.Now()), nil
}

// chargerDansPerimetre charge une activité et vérifie le droit de lecture
// de l'acteur. Hors périmètre de lecture citoyenne, la ressource est
// signalée introuvable plutôt qu'interdite.
func (s *ActiviteService) chargerDansPerimetre(ctx context.Context, acteur Acteur, id uint) (*model.ProgrammeActivite, error) {
	a, err := s.repo.Activite.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActiviteIntrouvable
		}
		return nil, err
	}

	switch acteur.Role {
	case model.RoleAdmin:
		return a, nil
	case model.RoleCoordinateur:
		portee, err := porteePour(ctx, s.repo.Utilisateur, acteur)
		if err != nil {
			return nil, err
		}
		if !portee.Contient(a.EtablissementID) {
			return nil, ErrHorsPerimetre
		}
		return a, nil
	default:
		if !a.EstVisibleCitoyen() {
			return nil, ErrActiviteIntrouvable
		}
		return a, nil
	}
}

// ── Cycle de vie ──

// Soumettre passe une activité en attente de validation. Seuls le
// coordinateur créateur et un administrateur peuvent soumettre.
// Une activité rejetée peut être resoumise ; son motif de rejet est purgé.
func (s *ActiviteService) Soumettre(ctx context.Context, acteur Acteur, id uint) (*dto.ActiviteResponse, error) {
	return s.transitionner(ctx, acteur, id, model.StatutEnAttenteValidation, regleCreateurSeul, func(a *model.ProgrammeActivite) {
		a.MotifRejet = ""
	})
}

// Valider approbation administrateur : la transition VALIDE pose aussi le
// drapeau is_valide_par_admin, prérequis de toute visibilité publique.
func (s *ActiviteService) Valider(ctx context.Context, acteur Acteur, id uint) (*dto.ActiviteResponse, error) {
	return s.transitionner(ctx, acteur, id, model.StatutValide, regleAdminSeul, func(a *model.ProgrammeActivite) {
		a.IsValideParAdmin = true
		a.MotifRejet = ""
	})
}

// Rejeter refuse une activité en attente, avec motif obligatoire
func (s *ActiviteService) Rejeter(ctx context.Context, acteur Acteur, id uint, req *dto.RejeterActiviteRequest) (*dto.ActiviteResponse, error) {
	if err := erreursValidationSi(req.Valider()); err != nil {
		return nil, err
	}
	return s.transitionner(ctx, acteur, id, model.StatutRejetee, regleAdminSeul, func(a *model.ProgrammeActivite) {
		a.MotifRejet = req.Motif
	})
}

// Publier applique le souhait de visibilité exprimé à la création : par
// défaut l'activité devient visible des citoyens, sauf si le créateur a
// demandé une programmation interne. is_visible_public n'est posé qu'ici,
// jamais à la création : la contrainte base (visible ⇒ validé) reste donc
// toujours satisfaite.
func (s *ActiviteService) Publier(ctx context.Context, acteur Acteur, id uint) (*dto.ActiviteResponse, error) {
	return s.transitionner(ctx, acteur, id, model.StatutPubliee, regleAdminSeul, func(a *model.ProgrammeActivite) {
		a.IsVisiblePublic = a.VisibilitePubliqueDemandee
	})
}

// regleTransition qui a le droit de déclencher une transition donnée.
type regleTransition int

const (
	// regleCreateurSeul coordinateur créateur de l'activité, ou admin.
	regleCreateurSeul regleTransition = iota
	// regleAdminSeul permission de validation requise (admin).
	regleAdminSeul
)

// transitionner applique une transition du cycle de vie avec garde de
// concurrence : la mise à jour exige en base le statut lu, une écriture
// concurrente intercalée fait échouer l'appel en conflit.
func (s *ActiviteService) transitionner(ctx context.Context, acteur Acteur, id uint, cible model.StatutActivite, regle regleTransition, muter func(*model.ProgrammeActivite)) (*dto.ActiviteResponse, error) {
	if acteur.Role != model.RoleCoordinateur && acteur.Role != model.RoleAdmin {
		return nil, ErrPermissionRefusee
	}
	if regle == regleAdminSeul {
		ok, err := s.autor.APermission(ctx, acteur, PermissionValiderProgramme)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrPermissionRefusee
		}
	}

	a, err := s.chargerDansPerimetre(ctx, acteur, id)
	if err != nil {
		return nil, err
	}

	if regle == regleCreateurSeul && acteur.Role != model.RoleAdmin && a.CreatedBy != acteur.ID {
		return nil, ErrPermissionRefusee
	}

	if cible == model.StatutPubliee && !a.IsValideParAdmin {
		return nil, ErrActiviteNonValidee
	}

	statutCourant := a.Statut
	if !statutCourant.PeutPasserA(cible) {
		return nil, ErrTransitionInvalide
	}

	a.Statut = cible
	if muter != nil {
		muter(a)
	}

	if err := s.repo.Activite.UpdateDepuisStatut(ctx, a, statutCourant); err != nil {
		return nil, err
	}

	s.logger.Info("Transition de statut",
		zap.Uint("activite_id", a.ID),
		zap.String("de", string(statutCourant)),
		zap.String("vers", string(cible)),
		zap.Uint("par", acteur.ID),
	)

	return versActiviteResponse(a, time.Now()), nil
}

// ── Rapport post-activité ──

// SoumettreRapport enregistre le rapport d'une activité terminée.
// Le taux de présence est calculé côté serveur, jamais accepté du client.
func (s *ActiviteService) SoumettreRapport(ctx context.Context, acteur Acteur, id uint, req *dto.RapporterActiviteRequest) (*dto.ActiviteResponse, error) {
	if err := erreursValidationSi(req.Valider()); err != nil {
		return nil, err
	}

	if acteur.Role != model.RoleCoordinateur && acteur.Role != model.RoleAdmin {
		return nil, ErrPermissionRefusee
	}

	a, err := s.chargerDansPerimetre(ctx, acteur, id)
	if err != nil {
		return nil, err
	}

	maintenant := time.Now()
	statut := a.StatutEffectif(maintenant)
	if statut != model.StatutTerminee {
		return nil, ErrActiviteNonTerminee
	}

	a.PresenceEffective = req.PresenceEffective
	a.NoteQualite = req.NoteQualite
	a.CommentaireDeroulement = req.CommentaireDeroulement
	a.Difficultes = req.Difficultes
	a.PointsPositifs = req.PointsPositifs
	a.Recommandations = req.Recommandations
	a.PhotosRapport = req.PhotosRapport
	a.TauxPresence = calculerTauxPresence(a.ParticipantsAttendus, req.PresenceEffective)
	a.RapportComplete = true
	a.DateRapport = &maintenant

	statutCourant := a.Statut
	a.Statut = model.StatutRapportComplete

	if err := s.repo.Activite.UpdateDepuisStatut(ctx, a, statutCourant); err != nil {
		return nil, err
	}

	s.logger.Info("Rapport soumis",
		zap.Uint("activite_id", a.ID),
		zap.Uint("par", acteur.ID),
	)

	return versActiviteResponse(a, maintenant), nil
}

// calculerTauxPresence pourcentage arrondi à deux décimales ; nul quand les
// participants attendus manquent ou valent zéro.
func calculerTauxPresence(attendus, effectifs *int) *float64 {
	if attendus == nil || *attendus == 0 || effectifs == nil {
		return nil
	}
	taux := math.Round(float64(*effectifs)/float64(*attendus)*100*100) / 100
	return &taux
}
