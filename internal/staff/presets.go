package staff

import (
	"fmt"
	"slices"
	"time"

	"github.com/Veraticus/venue-sim/internal/common"
)

// Attribute vocabulary shared by the presets and the staff roster.
const (
	AttrCharisma     = "charisma"
	AttrStrength     = "strength"
	AttrIntelligence = "intelligence"
	AttrDexterity    = "dexterity"
	AttrPerception   = "perception"
	AttrEndurance    = "endurance"
	AttrCreativity   = "creativity"
	AttrStealth      = "stealth"
	AttrIntimidation = "intimidation"
)

// Task family tags.
const (
	FamilyCustomerInteraction = "customer_interaction"
	FamilySecurityPatrol      = "security_patrol"
	FamilyDrinkService        = "drink_service"
	FamilyMusicPerformance    = "music_performance"
	FamilyFoodPreparation     = "food_preparation"
	FamilyGambling            = "illegal_gambling"
	FamilyBlackmail           = "illegal_blackmail"
	FamilySubstanceSale       = "illegal_substance_sale"

	// FamilyIllegal tags an illegal task with an unrecognised sub-type.
	FamilyIllegal = "illegal_activity"
)

// IllegalKind selects the sub-type of illegal-floor work.
type IllegalKind string

// Illegal-floor sub-types.
const (
	IllegalGambling      IllegalKind = "gambling"
	IllegalBlackmail     IllegalKind = "blackmail"
	IllegalSubstanceSale IllegalKind = "substance_sale"
)

// Requirement is a minimum attribute value needed to take a task.
type Requirement struct {
	Attribute string
	Min       float64
}

// Weight is the scoring weight of one attribute.
type Weight struct {
	Attribute string
	Weight    float64
}

// Preset is the declarative description of one task family.
type Preset struct {
	Family      string
	Name        string
	Description string
	Location    string
	Required    []Requirement
	Relevant    []Weight
	Duration    time.Duration
	Targeted    bool
}

var presets = []Preset{
	{
		Family:      FamilyCustomerInteraction,
		Name:        "Customer Interaction",
		Description: "Chat up a guest and keep them spending",
		Location:    "floor",
		Duration:    30 * time.Minute,
		Targeted:    true,
		Required:    []Requirement{{AttrCharisma, 3}},
		Relevant: []Weight{
			{AttrCharisma, 2.0},
			{AttrPerception, 1.0},
			{AttrIntelligence, 0.5},
		},
	},
	{
		Family:      FamilySecurityPatrol,
		Name:        "Security Patrol",
		Description: "Walk the floor and keep the peace",
		Location:    "floor",
		Duration:    Continuous,
		Required: []Requirement{
			{AttrStrength, 4},
			{AttrPerception, 3},
		},
		Relevant: []Weight{
			{AttrStrength, 1.5},
			{AttrPerception, 1.5},
			{AttrIntimidation, 1.0},
			{AttrEndurance, 0.5},
		},
	},
	{
		Family:      FamilyDrinkService,
		Name:        "Drink Service",
		Description: "Mix and serve a round at the bar",
		Location:    "bar",
		Duration:    10 * time.Minute,
		Targeted:    true,
		Required:    []Requirement{{AttrDexterity, 3}},
		Relevant: []Weight{
			{AttrDexterity, 1.5},
			{AttrCharisma, 1.0},
			{AttrPerception, 0.5},
		},
	},
	{
		Family:      FamilyMusicPerformance,
		Name:        "Music Performance",
		Description: "Play a set on stage",
		Location:    "stage",
		Duration:    45 * time.Minute,
		Required:    []Requirement{{AttrCreativity, 5}},
		Relevant: []Weight{
			{AttrCreativity, 2.0},
			{AttrCharisma, 1.0},
			{AttrEndurance, 0.5},
		},
	},
	{
		Family:      FamilyFoodPreparation,
		Name:        "Food Preparation",
		Description: "Cook an order in the kitchen",
		Location:    "kitchen",
		Duration:    20 * time.Minute,
		Required: []Requirement{
			{AttrDexterity, 2},
			{AttrIntelligence, 2},
		},
		Relevant: []Weight{
			{AttrDexterity, 1.0},
			{AttrIntelligence, 1.0},
			{AttrCreativity, 1.0},
		},
	},
	{
		Family:      FamilyGambling,
		Name:        "Run Card Table",
		Description: "Deal an off-the-books game in the back room",
		Location:    "back_room",
		Duration:    60 * time.Minute,
		Required:    []Requirement{{AttrIntelligence, 4}},
		Relevant: []Weight{
			{AttrIntelligence, 1.5},
			{AttrPerception, 1.5},
			{AttrCharisma, 0.5},
		},
	},
	{
		Family:      FamilyBlackmail,
		Name:        "Blackmail",
		Description: "Lean on a guest with something to hide",
		Location:    "back_room",
		Duration:    40 * time.Minute,
		Targeted:    true,
		Required:    []Requirement{{AttrIntimidation, 5}},
		Relevant: []Weight{
			{AttrIntimidation, 2.0},
			{AttrIntelligence, 1.0},
			{AttrStealth, 1.0},
		},
	},
	{
		Family:      FamilySubstanceSale,
		Name:        "Back-Room Sale",
		Description: "Move contraband to a trusted buyer",
		Location:    "back_room",
		Duration:    15 * time.Minute,
		Targeted:    true,
		Required:    []Requirement{{AttrStealth, 4}},
		Relevant: []Weight{
			{AttrStealth, 2.0},
			{AttrCharisma, 1.0},
			{AttrPerception, 1.0},
		},
	},
}

// Presets returns a copy of every task family preset in table order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	for i, p := range presets {
		p.Required = slices.Clone(p.Required)
		p.Relevant = slices.Clone(p.Relevant)
		out[i] = p
	}
	return out
}

// Lookup finds the preset for a family tag.
func Lookup(family string) (Preset, bool) {
	for _, p := range presets {
		if p.Family == family {
			p.Required = slices.Clone(p.Required)
			p.Relevant = slices.Clone(p.Relevant)
			return p, true
		}
	}
	return Preset{}, false
}

// Families returns every known family tag in table order.
func Families() []string {
	out := make([]string, 0, len(presets))
	for _, p := range presets {
		out = append(out, p.Family)
	}
	return out
}

// Build creates a pending task from the preset. The target is ignored for
// untargeted families.
func (p Preset) Build(target string) *Task {
	opts := []Option{
		WithDuration(p.Duration),
		WithDescription(p.Description),
		WithLocation(p.Location),
	}
	if p.Targeted && target != "" {
		opts = append(opts, WithTarget(target))
	}

	t := New(p.Name, p.Family, opts...)
	for _, r := range p.Required {
		t.AddRequiredAttribute(r.Attribute, r.Min)
	}
	for _, w := range p.Relevant {
		t.AddRelevantAttribute(w.Attribute, w.Weight)
	}
	return t
}

// FromFamily builds a task for a family tag.
func FromFamily(family, target string) (*Task, error) {
	p, ok := Lookup(family)
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownTaskFamily, family)
	}
	return p.Build(target), nil
}

func mustBuild(family, target string) *Task {
	t, err := FromFamily(family, target)
	if err != nil {
		panic(err)
	}
	return t
}

// NewCustomerInteraction builds a task to entertain the given customer.
func NewCustomerInteraction(customer string) *Task {
	return mustBuild(FamilyCustomerInteraction, customer)
}

// NewSecurityPatrol builds a continuous patrol task.
func NewSecurityPatrol() *Task {
	return mustBuild(FamilySecurityPatrol, "")
}

// NewDrinkService builds a task to serve the given customer at the bar.
func NewDrinkService(customer string) *Task {
	return mustBuild(FamilyDrinkService, customer)
}

// NewMusicPerformance builds a stage performance task.
func NewMusicPerformance() *Task {
	return mustBuild(FamilyMusicPerformance, "")
}

// NewFoodPreparation builds a kitchen task.
func NewFoodPreparation() *Task {
	return mustBuild(FamilyFoodPreparation, "")
}

// NewIllegalActivity builds back-room work of the given kind. An unknown kind
// yields a bare illegal task with the default duration and no attributes.
func NewIllegalActivity(kind IllegalKind, target string) *Task {
	switch kind {
	case IllegalGambling:
		return mustBuild(FamilyGambling, target)
	case IllegalBlackmail:
		return mustBuild(FamilyBlackmail, target)
	case IllegalSubstanceSale:
		return mustBuild(FamilySubstanceSale, target)
	default:
		common.LogDebug("unknown illegal activity kind", common.Fields{"kind": string(kind)})
		return New("Illegal Activity", FamilyIllegal,
			WithDescription(string(kind)),
			WithLocation("back_room"),
			WithTarget(target))
	}
}
