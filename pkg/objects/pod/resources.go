package pod

import (
	"github.com/nbspawn/nbspawn/pkg/util/kubeobjects/container"
	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
)

var _ Modifier = ResourcesModifier{}

// ResourcesModifier initializes requests and limits as empty lists and adds
// cpu/memory entries only for inputs that are actually set. Some apiservers
// reject explicit zero-valued resources, so absent must stay absent.
type ResourcesModifier struct {
	props Properties
}

func newResourcesModifier(props Properties) ResourcesModifier {
	return ResourcesModifier{props: props}
}

func (mod ResourcesModifier) Enabled() bool {
	return true
}

func (mod ResourcesModifier) Modify(pod *corev1.Pod) error {
	notebookContainer, err := container.FindContainerInPod(*pod, ContainerName)
	if err != nil {
		return err
	}

	requests := corev1.ResourceList{}
	if err := addQuantity(requests, corev1.ResourceCPU, mod.props.CPUGuarantee); err != nil {
		return err
	}

	if err := addQuantity(requests, corev1.ResourceMemory, mod.props.MemoryGuarantee); err != nil {
		return err
	}

	limits := corev1.ResourceList{}
	if err := addQuantity(limits, corev1.ResourceCPU, mod.props.CPULimit); err != nil {
		return err
	}

	if err := addQuantity(limits, corev1.ResourceMemory, mod.props.MemoryLimit); err != nil {
		return err
	}

	notebookContainer.Resources = corev1.ResourceRequirements{
		Requests: requests,
		Limits:   limits,
	}

	return nil
}

func addQuantity(resources corev1.ResourceList, name corev1.ResourceName, value string) error {
	if value == "" {
		return nil
	}

	quantity, err := resource.ParseQuantity(value)
	if err != nil {
		return errors.Wrapf(err, `malformed %s quantity "%s"`, name, value)
	}

	resources[name] = quantity

	return nil
}
