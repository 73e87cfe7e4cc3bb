// Package providers registers every available DNS provider. Importing it is
// enough to make the "aws" and "linode" factories resolvable by name.
package providers

import (
	_ "github.com/cloud-dns-reconciler/pkg/aws"
	_ "github.com/cloud-dns-reconciler/pkg/linode"
)
