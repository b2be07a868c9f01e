package cluster

import (
	"errors"
	"fmt"

	"k8s.io/apimachinery/pkg/version"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// NewKubeClient builds a clientset from the kubeconfig loading rules
// (explicit path, $KUBECONFIG, ~/.kube/config). When no kubeconfig can be
// loaded it falls back to the in-cluster service account.
func NewKubeClient(kubeconfig, kubeContext string) (kubernetes.Interface, error) {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	if kubeconfig != "" {
		rules.ExplicitPath = kubeconfig
	}
	overrides := &clientcmd.ConfigOverrides{CurrentContext: kubeContext}

	config, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, overrides).ClientConfig()
	if err != nil {
		inClusterConfig, inClusterErr := rest.InClusterConfig()
		if inClusterErr != nil {
			return nil, fmt.Errorf("could not load kubeconfig: %w", err)
		}
		config = inClusterConfig
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("could not create the Kubernetes client: %w", err)
	}

	return clientset, nil
}

// Preflight checks that the API server answers. A failure here is fatal for
// every mode of the tool.
func Preflight(client kubernetes.Interface) (*version.Info, error) {
	if client == nil {
		return nil, errors.New("no Kubernetes client configured")
	}

	info, err := client.Discovery().ServerVersion()
	if err != nil {
		return nil, fmt.Errorf("cluster is not reachable: %w", err)
	}

	return info, nil
}
