// Package render draws circuits as text and formats sampled distributions
// as a terminal bar chart, JSON or YAML.
package render
