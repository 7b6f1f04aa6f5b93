package huntermbm

import "github.com/legacy3/wowlab-sub002/rotation"

// defaultRotation transcribes rotation.rs's EXAMPLE_ROTATION_JSON into a
// Go AST literal, trimmed to the spells this handler implements (the
// original's call_of_the_wild cooldowns entry references a spell this
// project does not port). This is the one permitted departure from "port
// the text verbatim": rotations in this project are authored as AST
// literals, never parsed from a script (see rotation/ast.go's package
// doc), so transcription is the literal's equivalent of a parse.
//
// Conditions read simulation state exclusively through
// rotation.Property (flattened into a property slot by
// rotation.Preprocess) and, for kill_shot's execute-window pre-pool,
// rotation.Method (hoisted into a method-call slot evaluated by
// stateResolver.EvaluateMethod).
func defaultRotation() *rotation.Rotation {
	inOpener := rotation.Lt(rotation.Property("combat", "time"), rotation.Float(10))

	needFrenzyRefresh := rotation.And(
		rotation.Property("buff", "frenzy", "active"),
		rotation.Lt(rotation.Property("buff", "frenzy", "remaining"), rotation.Float(2)),
	)

	cooldowns := []rotation.Action{
		{
			Kind: rotation.ActionCast, Spell: "bestial_wrath", HasCond: true,
			Condition: rotation.Property("cooldown", "bestial_wrath", "ready"),
		},
	}

	// killShotCondition pools Kill Shot once the target is already below
	// the execute threshold, or will fall below it within 3 seconds at
	// the current running dps (target.time_to_percent), so the cast
	// isn't lost to the GCD racing the boss into execute range.
	killShotCondition := rotation.And(
		rotation.Or(
			rotation.Lt(rotation.Property("target", "health_percent"), rotation.Float(0.20)),
			rotation.Lt(rotation.Method("target", nil, "time_to_percent", rotation.Float(20)), rotation.Float(3)),
		),
		rotation.Property("cooldown", "kill_shot", "ready"),
	)

	st := []rotation.Action{
		{
			Kind: rotation.ActionCast, Spell: "barbed_shot", HasCond: true,
			Condition: rotation.Or(
				rotation.Not(rotation.Property("buff", "frenzy", "active")),
				rotation.UserVar("need_frenzy_refresh"),
				rotation.Gte(rotation.Property("cooldown", "barbed_shot", "charges"), rotation.Int(2)),
			),
		},
		{
			Kind: rotation.ActionCast, Spell: "kill_shot", HasCond: true,
			Condition: killShotCondition,
		},
		{
			Kind: rotation.ActionCast, Spell: "kill_command", HasCond: true,
			Condition: rotation.Property("cooldown", "kill_command", "ready"),
		},
		{
			Kind: rotation.ActionCast, Spell: "cobra_shot", HasCond: true,
			Condition: rotation.Gte(rotation.Property("resource", "focus"), rotation.Float(50)),
		},
	}

	return &rotation.Rotation{
		Name: "BM Hunter ST",
		Variables: map[string]rotation.Expr{
			"in_opener":           inOpener,
			"need_frenzy_refresh": needFrenzyRefresh,
		},
		Lists: map[string][]rotation.Action{
			"cooldowns": cooldowns,
			"st":        st,
		},
		Actions: []rotation.Action{
			{Kind: rotation.ActionCall, List: "cooldowns"},
			{Kind: rotation.ActionCall, List: "st"},
		},
	}
}
