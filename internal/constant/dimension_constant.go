package constant

// The nine psychometric dimensions of a candidate profile. Every candidate
// carries exactly these keys; values are integers on a 1-7 scale.
const (
	DimensionAntrieb        = "ANT" // Antrieb / drive
	DimensionIchStaerke     = "ICH" // Ich-Staerke / ego strength
	DimensionSozialkontakt  = "SOZ" // Sozialkontakt
	DimensionMotivation     = "MOT" // Motivation
	DimensionKommunikation  = "KOM" // Kommunikation
	DimensionEntscheidung   = "ENT" // Entscheidungsfreude
	DimensionStabilitaet    = "STA" // emotionale Stabilitaet
	DimensionLeistung       = "LEI" // Leistungsorientierung
	DimensionEmpathie       = "EMP" // Empathie
)

// DimensionKeys is the canonical key set, in display order.
var DimensionKeys = []string{
	DimensionAntrieb,
	DimensionIchStaerke,
	DimensionSozialkontakt,
	DimensionMotivation,
	DimensionKommunikation,
	DimensionEntscheidung,
	DimensionStabilitaet,
	DimensionLeistung,
	DimensionEmpathie,
}

const (
	DimensionMin     = 1
	DimensionMax     = 7
	DimensionDefault = 4 // scale midpoint
)
