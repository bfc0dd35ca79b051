package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"sigs.k8s.io/yaml"

	"github.com/nxthat/nanocl/internal/config"
	"github.com/nxthat/nanocl/internal/platform/nanocld"
	"github.com/nxthat/nanocl/internal/provisioning"
)

var (
	colorGreen = lipgloss.Color("#22c55e")
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	createdStyle = lipgloss.NewStyle().
			Foreground(colorGreen)
)

// summaryActions is the display order of the summary counts.
var summaryActions = []string{
	provisioning.ActionCreated,
	provisioning.ActionLinked,
	provisioning.ActionJoined,
	provisioning.ActionStarted,
	provisioning.ActionExists,
	provisioning.ActionSkipped,
}

// renderSummary produces the apply summary. styled selects lipgloss
// rendering for terminals; otherwise the text is plain.
func renderSummary(namespace string, state *provisioning.State, styled bool) string {
	render := func(style lipgloss.Style, s string) string {
		if styled {
			return style.Render(s)
		}
		return s
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(render(titleStyle, fmt.Sprintf("  nanocl apply: %s", namespace)))
	b.WriteString("\n")
	b.WriteString(render(dimStyle, "  "+strings.Repeat("═", 30)))
	b.WriteString("\n")

	results := state.Results()
	if len(results) == 0 {
		b.WriteString("  nothing to do\n")
		return b.String()
	}

	changed := false
	for _, r := range results {
		if r.Action == provisioning.ActionExists || r.Action == provisioning.ActionSkipped {
			continue
		}
		if !changed {
			b.WriteString("\n")
			b.WriteString(render(sectionStyle, "  Changes"))
			b.WriteString("\n")
			changed = true
		}
		line := fmt.Sprintf("    %-8s %s %s", r.Action, r.Kind, r.Name)
		b.WriteString(render(createdStyle, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(render(sectionStyle, "  Summary"))
	b.WriteString("\n")
	b.WriteString(render(dimStyle, "  "+strings.Repeat("─", 30)))
	b.WriteString("\n")
	for _, action := range summaryActions {
		if n := state.Count(action); n > 0 {
			fmt.Fprintf(&b, "    %-8s %d\n", action+":", n)
		}
	}

	return b.String()
}

// applyPlan is the set of payloads apply would send for a document.
type applyPlan struct {
	Namespace nanocld.NamespacePartial `json:"namespace"`
	Clusters  []clusterPlan            `json:"clusters,omitempty"`
	Cargoes   []nanocld.CargoPartial   `json:"cargoes,omitempty"`
}

type clusterPlan struct {
	Cluster   nanocld.ClusterPartial          `json:"cluster"`
	Variables []nanocld.ClusterVarPartial     `json:"variables,omitempty"`
	Networks  []nanocld.ClusterNetworkPartial `json:"networks,omitempty"`
	Joins     []nanocld.ClusterJoinPartial    `json:"joins,omitempty"`
	Start     bool                            `json:"start"`
}

func buildPlan(cfg *config.NamespaceConfig) applyPlan {
	plan := applyPlan{Namespace: nanocld.NamespacePartial{Name: cfg.Name}}

	for _, cluster := range cfg.Clusters {
		cp := clusterPlan{
			Cluster: cluster.Partial(),
			Start:   cluster.ShouldStart(),
		}
		for _, name := range cluster.VariableNames() {
			cp.Variables = append(cp.Variables, cluster.VariablePartial(name))
		}
		for _, network := range cfg.Networks {
			cp.Networks = append(cp.Networks, network.Partial())
		}
		for _, join := range cluster.Joins {
			cp.Joins = append(cp.Joins, join.Partial())
		}
		plan.Clusters = append(plan.Clusters, cp)
	}

	for _, cargo := range cfg.Cargoes {
		plan.Cargoes = append(plan.Cargoes, cargo.Partial())
	}

	return plan
}

// renderPlan renders the payloads of cfg as YAML. Field names follow the
// JSON wire names so the output matches what the daemon receives.
func renderPlan(cfg *config.NamespaceConfig) ([]byte, error) {
	return yaml.Marshal(buildPlan(cfg))
}
