package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roadwatch/roadwatch/pkg/relevancy"
	"github.com/roadwatch/roadwatch/pkg/traffic"
)

// Criteria come from comma-separated env vars, or from a YAML file when
// ROADWATCH_CRITERIA_PATH is set (the file then wins outright). An unset
// types list falls back to the defaults; the other sets default to empty,
// which never matches.
func loadCriteria(env map[string]string) (relevancy.Criteria, error) {
	if path, ok := env["ROADWATCH_CRITERIA_PATH"]; ok {
		return loadCriteriaFile(path)
	}

	criteria := relevancy.Criteria{Types: relevancy.DefaultTypes()}

	if rawTypes, ok := env["ROADWATCH_RELEVANT_EVENT_TYPES"]; ok {
		criteria.Types = nil
		for _, eventType := range strings.Split(rawTypes, ",") {
			criteria.Types = append(criteria.Types, traffic.EventType(eventType))
		}
	}

	if rawPostcodes, ok := env["ROADWATCH_RELEVANT_POSTCODES"]; ok {
		for _, rawPostcode := range strings.Split(rawPostcodes, ",") {
			postcode, err := strconv.Atoi(strings.TrimSpace(rawPostcode))
			if err != nil {
				return relevancy.Criteria{}, fmt.Errorf("parse ROADWATCH_RELEVANT_POSTCODES: %w", err)
			}

			criteria.Postcodes = append(criteria.Postcodes, postcode)
		}
	}

	if rawSuburbs, ok := env["ROADWATCH_RELEVANT_SUBURBS"]; ok {
		for _, suburb := range strings.Split(rawSuburbs, ",") {
			criteria.Suburbs = append(criteria.Suburbs, strings.TrimSpace(suburb))
		}
	}

	if rawTowards, ok := env["ROADWATCH_RELEVANT_TOWARDS_SUBURBS"]; ok {
		for _, suburb := range strings.Split(rawTowards, ",") {
			criteria.TowardsSuburbs = append(criteria.TowardsSuburbs, strings.TrimSpace(suburb))
		}
	}

	return criteria, nil
}

type criteriaFile struct {
	Types          []string `yaml:"types"`
	Postcodes      []int    `yaml:"postcodes"`
	Suburbs        []string `yaml:"suburbs"`
	TowardsSuburbs []string `yaml:"towards_suburbs"`
}

func loadCriteriaFile(path string) (relevancy.Criteria, error) {
	yamlBytes, err := os.ReadFile(path)
	if err != nil {
		return relevancy.Criteria{}, fmt.Errorf("read criteria file: %w", err)
	}

	var file criteriaFile
	if err := yaml.Unmarshal(yamlBytes, &file); err != nil {
		return relevancy.Criteria{}, fmt.Errorf("parse criteria file %s: %w", path, err)
	}

	criteria := relevancy.Criteria{
		Postcodes:      file.Postcodes,
		Suburbs:        file.Suburbs,
		TowardsSuburbs: file.TowardsSuburbs,
	}

	if len(file.Types) == 0 {
		criteria.Types = relevancy.DefaultTypes()
	} else {
		for _, eventType := range file.Types {
			criteria.Types = append(criteria.Types, traffic.EventType(eventType))
		}
	}

	return criteria, nil
}
