// Package app wires one invocation of the engine together: it builds the
// logger, loads raw options through a config.Loader, resolves them into a
// validated plan, and hands the plan to the generation engine. The app holds
// no state across invocations; every run constructs a fresh plan.
package app
