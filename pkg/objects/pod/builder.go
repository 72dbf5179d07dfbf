package pod

import (
	"sort"

	"github.com/nbspawn/nbspawn/pkg/builder"
	"github.com/nbspawn/nbspawn/pkg/util/maputil"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

type Modifier = builder.Modifier[corev1.Pod]

type Builder struct {
	props Properties
}

func NewBuilder(props Properties) Builder {
	return Builder{props: props}
}

// Build assembles the pod specification for one notebook server. The only
// failure path is a malformed resource quantity in the properties.
func (podBuilder Builder) Build() (*corev1.Pod, error) {
	notebookPodBuilder := builder.NewBuilder(podBuilder.getBase())

	pod, err := notebookPodBuilder.AddModifier(
		newSecurityContextModifier(podBuilder.props),
		newImagePullSecretModifier(podBuilder.props),
		newNodeSelectorModifier(podBuilder.props),
		newResourcesModifier(podBuilder.props),
	).Build()
	if err != nil {
		return nil, err
	}

	return &pod, nil
}

func (podBuilder Builder) getBase() corev1.Pod {
	var pod corev1.Pod

	pod.Kind = "Pod"
	pod.APIVersion = "v1"
	pod.ObjectMeta = podBuilder.getBaseObjectMeta()
	pod.Spec = podBuilder.getBaseSpec()

	return pod
}

func (podBuilder Builder) getBaseObjectMeta() metav1.ObjectMeta {
	return metav1.ObjectMeta{
		Name:   podBuilder.props.Name,
		Labels: maputil.CopyMap(podBuilder.props.Labels),
	}
}

func (podBuilder Builder) getBaseSpec() corev1.PodSpec {
	return corev1.PodSpec{
		Containers:     podBuilder.buildNotebookContainer(),
		InitContainers: podBuilder.props.InitContainers,
		Volumes:        podBuilder.props.Volumes,
	}
}

func (podBuilder Builder) buildNotebookContainer() []corev1.Container {
	notebookContainer := corev1.Container{
		Name:            ContainerName,
		Image:           podBuilder.props.Image,
		WorkingDir:      podBuilder.props.WorkingDir,
		Ports:           podBuilder.buildPorts(),
		Env:             podBuilder.buildEnvs(),
		Args:            podBuilder.props.Args,
		ImagePullPolicy: podBuilder.props.ImagePullPolicy,
		Lifecycle:       podBuilder.props.Lifecycle,
		VolumeMounts:    podBuilder.props.VolumeMounts,
	}

	return []corev1.Container{notebookContainer}
}

func (podBuilder Builder) buildPorts() []corev1.ContainerPort {
	return []corev1.ContainerPort{
		{
			Name:          PortName,
			ContainerPort: podBuilder.props.Port,
		},
	}
}

func (podBuilder Builder) buildEnvs() []corev1.EnvVar {
	names := make([]string, 0, len(podBuilder.props.Env))
	for name := range podBuilder.props.Env {
		names = append(names, name)
	}

	// map iteration order is random, keep the output stable
	sort.Strings(names)

	envs := make([]corev1.EnvVar, 0, len(names))
	for _, name := range names {
		envs = append(envs, corev1.EnvVar{Name: name, Value: podBuilder.props.Env[name]})
	}

	return envs
}
