// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// express-crud-scaffold is a command-line tool that generates the model,
// repository, service, controller and route files for one resource of an
// Express + TypeScript + Sequelize backend.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/express-crud-scaffold/cmd/express-crud-scaffold@latest
//
// # Usage
//
//	express-crud-scaffold <model_name> <model_name_plural> [FLAGS]
//
// Run it from the project root, next to the models/, repositories/,
// services/, controllers/ and routes/ directories. The first character of
// each name is lowercased for file names and variables and uppercased for
// class and function names.
//
// # Flags
//
//	-C, --dir         Project root to generate into (default: .)
//	-n, --dry-run     Print the planned files as a markdown table, write nothing
//	    --config      JSON or YAML config file (env CRUD_SCAFFOLD_CONFIG)
//	    --log-format  Log output format: text or json (default: text)
//	-v, --verbose     Print debug output
//	-q, --quiet       Suppress progress output, errors are still reported
//	    --version     Print the version
//
// # Files
//
// For "task tasks" the tool creates:
//
//	models/task.model.ts
//	repositories/task.repository.ts
//	services/task.service.ts
//	controllers/task.controller.ts
//	routes/task.route.ts
//
// Every target is validated first. If any file already exists or a directory
// is missing, nothing is written and the tool exits with status 1.
//
// # Examples
//
// Scaffold a resource in the current project:
//
//	express-crud-scaffold category categories
//
// Preview the files for a project in another directory:
//
//	express-crud-scaffold person people --dir ./backend --dry-run
package main
