package pod

import (
	corev1 "k8s.io/api/core/v1"
)

const (
	// ContainerName is the name of the primary container in every spawned pod.
	ContainerName = "notebook"
	// PortName is the named container port the proxy discovers the notebook
	// server under.
	PortName = "notebook-port"
)

// Properties is the full parameter set a spawn request provides for one
// notebook pod. Name must be a valid DNS label, unique within the target
// namespace; the builder does not validate it, submission fails downstream
// if the caller gets it wrong.
type Properties struct {
	// Name of the pod.
	Name string `json:"name"`
	// Image reference, usually name:tag as used on the docker command line.
	Image string `json:"image"`
	// ImagePullPolicy decides when the image is re-fetched from its registry.
	ImagePullPolicy corev1.PullPolicy `json:"imagePullPolicy,omitempty"`
	// ImagePullSecret names the secret for private registries, empty means none.
	ImagePullSecret string `json:"imagePullSecret,omitempty"`
	// Port the notebook server is going to be listening on.
	Port int32 `json:"port"`
	// Args is the command used to execute the notebook server.
	Args []string `json:"args,omitempty"`
	// NodeSelector constrains which nodes the pod may be scheduled onto.
	NodeSelector map[string]string `json:"nodeSelector,omitempty"`
	// RunAsUser is the uid the notebook process runs as, nil keeps the
	// uid baked into the image.
	RunAsUser *int64 `json:"runAsUser,omitempty"`
	// FSGroup is the gid owning freshly mounted volumes, for volume types
	// that support it. Nil leaves ownership untouched.
	FSGroup *int64 `json:"fsGroup,omitempty"`
	// Env holds environment variables for the notebook container. Key
	// uniqueness is guaranteed by the map type.
	Env map[string]string `json:"env,omitempty"`
	// WorkingDir of the notebook container.
	WorkingDir string `json:"workingDir,omitempty"`

	Volumes      []corev1.Volume      `json:"volumes,omitempty"`
	VolumeMounts []corev1.VolumeMount `json:"volumeMounts,omitempty"`

	// Labels to add to the spawned pod.
	Labels map[string]string `json:"labels,omitempty"`

	// CPULimit and MemoryLimit cap the container, CPUGuarantee and
	// MemoryGuarantee are what the scheduler reserves. All four are quantity
	// strings ("500m", "2Gi"); empty means the entry is omitted entirely,
	// not submitted as zero.
	CPULimit        string `json:"cpuLimit,omitempty"`
	CPUGuarantee    string `json:"cpuGuarantee,omitempty"`
	MemoryLimit     string `json:"memLimit,omitempty"`
	MemoryGuarantee string `json:"memGuarantee,omitempty"`

	Lifecycle      *corev1.Lifecycle  `json:"lifecycleHooks,omitempty"`
	InitContainers []corev1.Container `json:"initContainers,omitempty"`
}
