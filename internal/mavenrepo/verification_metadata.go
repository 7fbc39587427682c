package mavenrepo

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
)

var errMalformedVerificationMetadata = errors.New("malformed verification-metadata.xml")

// ComponentsFromVerificationMetadata reads a Gradle dependency verification
// file (gradle/verification-metadata.xml) and returns the component GAVs it
// lists. See https://docs.gradle.org/current/userguide/dependency_verification.html.
func ComponentsFromVerificationMetadata(pth string) ([]Artifact, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(pth); err != nil {
		return nil, fmt.Errorf("parse verification metadata at %s, error: %w", pth, err)
	}

	root := doc.SelectElement("verification-metadata")
	if root == nil {
		return nil, fmt.Errorf("%w: missing verification-metadata element", errMalformedVerificationMetadata)
	}

	components := root.SelectElement("components")
	if components == nil {
		// No pinned components, nothing to cross-check.
		return nil, nil
	}

	var artifacts []Artifact
	for _, component := range components.SelectElements("component") {
		artifact := Artifact{
			Group:   component.SelectAttrValue("group", ""),
			Name:    component.SelectAttrValue("name", ""),
			Version: component.SelectAttrValue("version", ""),
		}
		if artifact.Group == "" || artifact.Name == "" || artifact.Version == "" {
			return nil, fmt.Errorf("%w: component missing group/name/version attributes", errMalformedVerificationMetadata)
		}
		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}
