package dto

// ── Établissements ──

// CreerEtablissementRequest corps de POST /etablissements
type CreerEtablissementRequest struct {
	Nom     string `json:"nom"     validate:"required,min=2,max=255"`
	Type    string `json:"type"    validate:"required,max=50"`
	Adresse string `json:"adresse" validate:"omitempty,max=500"`
	Ville   string `json:"ville"   validate:"omitempty,max=100"`
}

// Valider contrôle les champs de création
func (r *CreerEtablissementRequest) Valider() []ErreurChamp {
	if err := valide.Struct(r); err != nil {
		return erreursDepuisValidator(err)
	}
	return nil
}

// ModifierEtablissementRequest corps de PUT /etablissements/:id
type ModifierEtablissementRequest struct {
	Nom     *string `json:"nom"     validate:"omitempty,min=2,max=255"`
	Type    *string `json:"type"    validate:"omitempty,max=50"`
	Adresse *string `json:"adresse" validate:"omitempty,max=500"`
	Ville   *string `json:"ville"   validate:"omitempty,max=100"`
	Actif   *bool   `json:"actif"`
}

// Valider contrôle les champs de modification
func (r *ModifierEtablissementRequest) Valider() []ErreurChamp {
	if err := valide.Struct(r); err != nil {
		return erreursDepuisValidator(err)
	}
	return nil
}

// EtablissementResponse vue d'un établissement
type EtablissementResponse struct {
	ID        uint   `json:"id"`
	Nom       string `json:"nom"`
	Type      string `json:"type"`
	Adresse   string `json:"adresse,omitempty"`
	Ville     string `json:"ville,omitempty"`
	Actif     bool   `json:"actif"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
