// Package project scaffolds project folders from built-in templates.
package project

import (
	"os"
	"os/exec"
	"path/filepath"

	"notable/internal/errors"
	"notable/internal/log"
)

// Create scaffolds a new project named name under dir using the named
// template, and returns the project root path. Nothing is created when
// the project already exists or the template is unknown. When initGit
// is set a git repository is initialized in the new root; a git
// failure surfaces as a subprocess error but the scaffolded tree is
// kept.
func Create(name, template, dir string, initGit bool) (string, error) {
	projectPath := filepath.Join(dir, name)

	if _, err := os.Stat(projectPath); err == nil {
		return "", errors.NewFileError("project already exists", projectPath, errors.AlreadyExists, nil)
	} else if !os.IsNotExist(err) {
		return "", errors.NewFileError("cannot check project path", projectPath, errors.InvalidPath, err)
	}

	tmpl, ok := Lookup(template)
	if !ok {
		return "", errors.NewTemplateError("template not found", template, errors.UnknownTemplate, nil)
	}

	if err := os.MkdirAll(projectPath, 0755); err != nil {
		return "", errors.NewFileError("failed to create project folder", projectPath, errors.InvalidPath, err)
	}

	for _, folder := range tmpl.Folders {
		folderPath := filepath.Join(projectPath, folder.Path)
		if err := os.MkdirAll(folderPath, 0755); err != nil {
			return "", errors.NewFileError("failed to create template folder", folderPath, errors.InvalidPath, err)
		}
		for _, file := range folder.Files {
			if err := os.WriteFile(filepath.Join(folderPath, file), nil, 0644); err != nil {
				return "", errors.NewFileError("failed to create template file", filepath.Join(folderPath, file), errors.InvalidPath, err)
			}
		}
		for _, sub := range folder.Dirs {
			if err := os.MkdirAll(filepath.Join(folderPath, sub), 0755); err != nil {
				return "", errors.NewFileError("failed to create template directory", filepath.Join(folderPath, sub), errors.InvalidPath, err)
			}
		}
	}

	log.LogWithFields(log.F("path", projectPath), log.F("template", template)).Debug("project created")

	if initGit {
		if err := GitInit(projectPath); err != nil {
			// The scaffolded tree stays in place
			return projectPath, err
		}
	}

	return projectPath, nil
}

// GitInit initializes a git repository in the given directory.
func GitInit(dir string) error {
	cmd := exec.Command("git", "init")
	cmd.Dir = dir
	if output, err := cmd.CombinedOutput(); err != nil {
		log.Debugf("git init output: %s", output)
		return errors.NewCommandError("failed to initialize git repository", "git", err)
	}
	return nil
}
