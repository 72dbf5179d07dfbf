package render

import (
	"io"

	"github.com/nbspawn/nbspawn/pkg/objects/pod"
	"github.com/nbspawn/nbspawn/pkg/objects/pvc"
	"github.com/nbspawn/nbspawn/pkg/objects/route"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// Request is the on-disk form of one spawn request. Every section is
// optional, only the objects for present sections are rendered.
type Request struct {
	Pod   *pod.Properties   `json:"pod,omitempty"`
	Claim *pvc.Properties   `json:"claim,omitempty"`
	Route *route.Properties `json:"route,omitempty"`
}

var requestPath string

// New creates the render command. It builds the objects a spawn request
// would produce and prints them as a YAML stream, without talking to any
// cluster.
func New(fs afero.Afero, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:          use,
		RunE:         run(fs, out),
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&requestPath, requestFlagName, "", "Path to the spawn request file.")
	_ = cmd.MarkFlagRequired(requestFlagName)

	return cmd
}

func run(fs afero.Afero, out io.Writer) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		request, err := readRequest(fs, requestPath)
		if err != nil {
			return err
		}

		manifests, err := buildManifests(request)
		if err != nil {
			return err
		}

		log.Info("rendering spawn request", "path", requestPath, "objects", len(manifests))

		return writeManifests(out, manifests)
	}
}

func readRequest(fs afero.Afero, path string) (Request, error) {
	var request Request

	raw, err := fs.ReadFile(path)
	if err != nil {
		return request, errors.WithStack(err)
	}

	if err := yaml.Unmarshal(raw, &request); err != nil {
		return request, errors.Wrapf(err, `malformed spawn request "%s"`, path)
	}

	return request, nil
}

func buildManifests(request Request) ([]any, error) {
	manifests := []any{}

	if request.Pod != nil {
		notebookPod, err := pod.NewBuilder(*request.Pod).Build()
		if err != nil {
			return nil, err
		}

		manifests = append(manifests, notebookPod)
	}

	if request.Claim != nil {
		claim, err := pvc.Build(*request.Claim)
		if err != nil {
			return nil, err
		}

		manifests = append(manifests, claim)
	}

	if request.Route != nil {
		routeSet, err := route.Build(*request.Route)
		if err != nil {
			return nil, err
		}

		manifests = append(manifests, routeSet.Endpoints, routeSet.Service, routeSet.Ingress)
	}

	return manifests, nil
}

func writeManifests(out io.Writer, manifests []any) error {
	for _, manifest := range manifests {
		raw, err := yaml.Marshal(manifest)
		if err != nil {
			return errors.WithStack(err)
		}

		if _, err := out.Write([]byte("---\n")); err != nil {
			return errors.WithStack(err)
		}

		if _, err := out.Write(raw); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}
