package metadomain

// Campaign é a campanha como retornada pela Graph API
type Campaign struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// AdSet é o conjunto de anúncios criado junto com a campanha
type AdSet struct {
	ID string `json:"id"`
}

// CreateCampaignResult agrega os identificadores remotos criados
type CreateCampaignResult struct {
	CampaignID string
	AdSetID    string
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
}

// Mapeamento de objetivo do produto -> objetivo da campanha no Meta
var ObjectiveToMetaObjective = map[string]string{
	"AWARENESS":     "BRAND_AWARENESS",
	"CONSIDERATION": "CONSIDERATION",
	"CONVERSIONS":   "CONVERSIONS",
	"LEADS":         "LEAD_GENERATION",
	"SALES":         "CONVERSIONS",
}

// Mapeamento de objetivo do produto -> optimization_goal do ad set
var ObjectiveToOptimizationGoal = map[string]string{
	"AWARENESS":     "REACH",
	"CONSIDERATION": "LINK_CLICKS",
	"CONVERSIONS":   "CONVERSIONS",
	"LEADS":         "LEAD_GENERATION",
	"SALES":         "CONVERSIONS",
}

const (
	// Valores padrão para objetivos não mapeados
	DefaultMetaObjective    = "CONSIDERATION"
	DefaultOptimizationGoal = "LINK_CLICKS"
)
