package graph

import (
	"strings"

	"github.com/OFFIS-RIT/carekg/pkg/common"
	"github.com/OFFIS-RIT/carekg/pkg/loader"
	"github.com/OFFIS-RIT/carekg/pkg/ontology"
)

// Node attribute names written by the builder.
const (
	AttrAgeLimit    = "age_limit"
	AttrSpecialNote = "special_note"
	AttrDiet        = "diet"
	AttrCare        = "care"
	AttrPrice       = "price"
)

func applyInsurance(g *Graph, rec loader.Record) bool {
	product := strings.TrimSpace(rec.Get(loader.FieldProductName))
	if product == "" {
		return false
	}

	g.UpsertNode(product, ontology.InsuranceProduct, common.NewAttributes(
		AttrAgeLimit, strings.TrimSpace(rec.Get(loader.FieldAgeLimit)),
		AttrSpecialNote, strings.TrimSpace(rec.Get(loader.FieldSpecialNote)),
	))

	for _, disease := range loader.SplitList(rec.Get(loader.FieldCoveredDiseases)) {
		g.UpsertNode(disease, ontology.Disease, nil)
		g.InsertEdge(product, disease, ontology.CoversDisease)
	}
	return true
}

func applyMedical(g *Graph, rec loader.Record) bool {
	disease := strings.TrimSpace(rec.Get(loader.FieldDiseaseName))
	if disease == "" {
		return false
	}

	g.UpsertNode(disease, ontology.Disease, nil)
	g.UpdateAttributes(disease, common.NewAttributes(
		AttrDiet, strings.TrimSpace(rec.Get(loader.FieldDiet)),
		AttrCare, strings.TrimSpace(rec.Get(loader.FieldCare)),
	))

	if dept := strings.TrimSpace(rec.Get(loader.FieldDepartment)); dept != "" {
		g.UpsertNode(dept, ontology.Department, nil)
		g.InsertEdge(disease, dept, ontology.BelongsTo)
	}

	for _, drug := range loader.SplitList(rec.Get(loader.FieldDrugs)) {
		g.UpsertNode(drug, ontology.Drug, nil)
		g.InsertEdge(drug, disease, ontology.Treats)
	}
	return true
}

func applyCare(g *Graph, rec loader.CareRecord) bool {
	name := strings.TrimSpace(rec.Name)
	if name == "" {
		return false
	}

	g.UpsertNode(name, ontology.NursingHome, common.NewAttributes(
		AttrPrice, strings.TrimSpace(rec.PriceRange),
	))

	if loc := strings.TrimSpace(rec.Location); loc != "" {
		g.UpsertNode(loc, ontology.Location, nil)
		g.InsertEdge(name, loc, ontology.LocatedIn)
	}

	for _, svc := range rec.Services {
		svc = strings.TrimSpace(svc)
		if svc == "" {
			continue
		}
		g.UpsertNode(svc, ontology.Service, nil)
		g.InsertEdge(name, svc, ontology.ProvidesService)
	}
	return true
}
