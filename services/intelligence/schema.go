package intelligence

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Schemas mirror the output structure each prompt requests. They are used for
// diagnostics only unless strict checking is switched on.
const analysisSchema = `{
  "type": "object",
  "required": ["loanFitScore", "extractedTerms", "redFlags", "totalCostAnalysis",
    "enhancedAffordability", "detailedCibilImpact", "marketRateComparison",
    "governmentSchemeComparison", "actionPlan"],
  "properties": {
    "loanFitScore": {"type": "number"},
    "extractedTerms": {"type": "object"},
    "redFlags": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {"severity": {"enum": ["High", "Medium", "Low"]}}
      }
    },
    "totalCostAnalysis": {"type": "object"},
    "enhancedAffordability": {
      "type": "object",
      "properties": {"isAffordable": {"type": "boolean"}}
    },
    "detailedCibilImpact": {"type": "object"},
    "marketRateComparison": {
      "type": "object",
      "properties": {"recommendedLenders": {"type": "array"}}
    },
    "governmentSchemeComparison": {
      "type": "object",
      "properties": {"schemes": {"type": "array"}}
    },
    "actionPlan": {
      "type": "object",
      "required": ["finalVerdict", "nextSteps"],
      "properties": {
        "finalVerdict": {"enum": ["DO NOT SIGN", "Proceed with Caution", "Looks Good"]},
        "nextSteps": {"type": "array"}
      }
    },
    "cibilImpactConfidenceScore": {"type": "number", "minimum": 0, "maximum": 100}
  }
}`

const comparisonSchema = `{
  "type": "object",
  "required": ["winner", "reasoning", "costDifference", "featureMatrix"],
  "properties": {
    "winner": {"enum": ["Offer A", "Offer B"]},
    "reasoning": {"type": "string"},
    "costDifference": {"type": "string"},
    "featureMatrix": {
      "type": "array",
      "items": {"type": "object", "required": ["feature", "offerA", "offerB"]}
    },
    "cibilHealthAnalysis": {
      "type": "object",
      "properties": {"confidenceScore": {"type": "number", "minimum": 0, "maximum": 100}}
    }
  }
}`

const schemeListSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["name", "description", "interestRateComparison", "eligibility", "applicationGuidance"],
    "properties": {"eligibility": {"type": "array"}}
  }
}`

var schemaLoaders = map[string]gojsonschema.JSONLoader{
	OpAnalysis:   gojsonschema.NewStringLoader(analysisSchema),
	OpComparison: gojsonschema.NewStringLoader(comparisonSchema),
	OpSchemes:    gojsonschema.NewStringLoader(schemeListSchema),
}

// checkSchema validates a fence-stripped payload against the schema of op.
func checkSchema(op, payload string) error {
	loader, ok := schemaLoaders[op]
	if !ok {
		return nil
	}
	result, err := gojsonschema.Validate(loader, gojsonschema.NewStringLoader(payload))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("response does not match schema: %s", strings.Join(errs, "; "))
	}
	return nil
}
