// Package schedule parses material schedule files.
//
// A schedule is the project-file input surface the surrounding
// application feeds the engine from: one project block with the base
// area and waste buffer, plus one material block per line item. The
// format is HCL:
//
//	project {
//	  name          = "Unit 4B remodel"
//	  base_area     = 1200
//	  waste_percent = 10
//	}
//
//	material "Interior Wall Paint" {
//	  quantity = 700
//	  unit     = "sq ft"
//	}
//
//	material "Grout" {
//	  quantity = 5
//	  unit     = "bags"
//	  override {
//	    quantity    = 6
//	    unit        = "bags"
//	    reason      = "foreman count from site walk"
//	    resolved_by = "j.alvarez"
//	  }
//	}
package schedule

import (
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"material-quantity/core/types"
	"material-quantity/internal/errors"
)

// Schedule is a parsed material schedule ready for batch resolution.
type Schedule struct {
	// Name is the project name, if the schedule declares one
	Name string

	// BaseArea is the fallback input area for items without a quantity
	BaseArea float64

	// WastePercent is the schedule-wide waste buffer; nil defers to the
	// configured default
	WastePercent *float64

	// Items are the material line items in file order
	Items []*types.MaterialItem
}

type scheduleFile struct {
	Project   *projectBlock   `hcl:"project,block"`
	Materials []materialBlock `hcl:"material,block"`
}

type projectBlock struct {
	Name         string   `hcl:"name,optional"`
	BaseArea     float64  `hcl:"base_area"`
	WastePercent *float64 `hcl:"waste_percent,optional"`
}

type materialBlock struct {
	Name          string         `hcl:"name,label"`
	Quantity      *float64       `hcl:"quantity,optional"`
	Unit          string         `hcl:"unit,optional"`
	Type          string         `hcl:"type,optional"`
	CoverageRate  *float64       `hcl:"coverage_rate,optional"`
	ContainerUnit string         `hcl:"container_unit,optional"`
	Override      *overrideBlock `hcl:"override,block"`
}

type overrideBlock struct {
	Quantity   float64 `hcl:"quantity"`
	Unit       string  `hcl:"unit"`
	Reason     string  `hcl:"reason,optional"`
	ResolvedBy string  `hcl:"resolved_by,optional"`
}

// ParseFile parses a schedule from disk.
func ParseFile(path string) (*Schedule, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Schedule("failed to parse schedule file "+path, diagError(diags))
	}
	return decode(file)
}

// Parse parses a schedule from raw bytes. filename is used only for
// diagnostics.
func Parse(src []byte, filename string) (*Schedule, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Schedule("failed to parse schedule "+filename, diagError(diags))
	}
	return decode(file)
}

func decode(file *hcl.File) (*Schedule, error) {
	var sf scheduleFile
	if diags := gohcl.DecodeBody(file.Body, nil, &sf); diags.HasErrors() {
		return nil, errors.Schedule("invalid schedule contents", diagError(diags))
	}
	if sf.Project == nil {
		return nil, errors.New(errors.TypeSchedule, "schedule has no project block")
	}
	if sf.Project.BaseArea < 0 {
		return nil, errors.Newf(errors.TypeInput, "base_area must be >= 0, got %v", sf.Project.BaseArea)
	}
	if sf.Project.WastePercent != nil && *sf.Project.WastePercent < 0 {
		return nil, errors.Newf(errors.TypeInput, "waste_percent must be >= 0, got %v", *sf.Project.WastePercent)
	}

	s := &Schedule{
		Name:         sf.Project.Name,
		BaseArea:     sf.Project.BaseArea,
		WastePercent: sf.Project.WastePercent,
		Items:        make([]*types.MaterialItem, 0, len(sf.Materials)),
	}

	for _, m := range sf.Materials {
		item := &types.MaterialItem{
			Name:          m.Name,
			Type:          m.Type,
			BaseQuantity:  m.Quantity,
			Unit:          m.Unit,
			CoverageRate:  m.CoverageRate,
			ContainerUnit: m.ContainerUnit,
		}
		if m.Quantity != nil && *m.Quantity < 0 {
			return nil, errors.Newf(errors.TypeInput, "material %q: quantity must be >= 0, got %v", m.Name, *m.Quantity)
		}
		if m.CoverageRate != nil && m.ContainerUnit == "" {
			return nil, errors.Newf(errors.TypeInput, "material %q: container_unit is required with coverage_rate", m.Name)
		}
		if m.Override != nil {
			item.Override = &types.ManualOverride{
				Override:   true,
				Quantity:   m.Override.Quantity,
				Unit:       m.Override.Unit,
				Reason:     m.Override.Reason,
				ResolvedBy: m.Override.ResolvedBy,
				Timestamp:  time.Now().UTC(),
			}
		}
		s.Items = append(s.Items, item)
	}

	return s, nil
}

// diagError converts HCL diagnostics into a plain error for wrapping.
func diagError(diags hcl.Diagnostics) error {
	return diags
}
