package project

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/willibrandon/gopbx/pbx"
)

// testProject is a small but structurally complete project: one
// command-line tool target "App" with Sources and Frameworks phases,
// Debug and Release configurations at both project and target level,
// and a Products group.
const testProject = `// !$*UTF8*$!
{
	archiveVersion = 1;
	classes = {
	};
	objectVersion = 46;
	objects = {

/* Begin PBXBuildFile section */
		EE0000000000000000000001 /* main.c in Sources */ = {isa = PBXBuildFile; fileRef = FF0000000000000000000001 /* main.c */; };
/* End PBXBuildFile section */

/* Begin PBXFileReference section */
		FF0000000000000000000001 /* main.c */ = {isa = PBXFileReference; fileEncoding = 4; lastKnownFileType = sourcecode.c.c; name = main.c; path = main.c; sourceTree = "<group>"; };
		FF0000000000000000000002 /* App */ = {isa = PBXFileReference; explicitFileType = "compiled.mach-o.executable"; includeInIndex = 0; path = App; sourceTree = BUILT_PRODUCTS_DIR; };
/* End PBXFileReference section */

/* Begin PBXFrameworksBuildPhase section */
		DD0000000000000000000002 /* Frameworks */ = {
			isa = PBXFrameworksBuildPhase;
			buildActionMask = 2147483647;
			files = (
			);
			runOnlyForDeploymentPostprocessing = 0;
		};
/* End PBXFrameworksBuildPhase section */

/* Begin PBXGroup section */
		AA0000000000000000000002 = {
			isa = PBXGroup;
			children = (
				FF0000000000000000000001 /* main.c */,
				AA0000000000000000000003 /* Products */,
			);
			sourceTree = "<group>";
		};
		AA0000000000000000000003 /* Products */ = {
			isa = PBXGroup;
			children = (
				FF0000000000000000000002 /* App */,
			);
			name = Products;
			sourceTree = "<group>";
		};
/* End PBXGroup section */

/* Begin PBXNativeTarget section */
		BB0000000000000000000001 /* App */ = {
			isa = PBXNativeTarget;
			buildConfigurationList = CC0000000000000000000002 /* Build configuration list for PBXNativeTarget "App" */;
			buildPhases = (
				DD0000000000000000000001 /* Sources */,
				DD0000000000000000000002 /* Frameworks */,
			);
			buildRules = (
			);
			dependencies = (
			);
			name = App;
			productName = App;
			productReference = FF0000000000000000000002 /* App */;
			productType = "com.apple.product-type.tool";
		};
/* End PBXNativeTarget section */

/* Begin PBXProject section */
		AA0000000000000000000001 /* Project object */ = {
			isa = PBXProject;
			attributes = {
				LastUpgradeCheck = 0930;
			};
			buildConfigurationList = CC0000000000000000000001 /* Build configuration list for PBXProject */;
			compatibilityVersion = "Xcode 8.0";
			developmentRegion = en;
			hasScannedForEncodings = 0;
			knownRegions = (
				en,
			);
			mainGroup = AA0000000000000000000002;
			productRefGroup = AA0000000000000000000003 /* Products */;
			projectDirPath = "";
			projectRoot = "";
			targets = (
				BB0000000000000000000001 /* App */,
			);
		};
/* End PBXProject section */

/* Begin PBXSourcesBuildPhase section */
		DD0000000000000000000001 /* Sources */ = {
			isa = PBXSourcesBuildPhase;
			buildActionMask = 2147483647;
			files = (
				EE0000000000000000000001 /* main.c in Sources */,
			);
			runOnlyForDeploymentPostprocessing = 0;
		};
/* End PBXSourcesBuildPhase section */

/* Begin XCBuildConfiguration section */
		CF0000000000000000000001 /* Debug */ = {
			isa = XCBuildConfiguration;
			buildSettings = {
				GCC_OPTIMIZATION_LEVEL = 0;
			};
			name = Debug;
		};
		CF0000000000000000000002 /* Release */ = {
			isa = XCBuildConfiguration;
			buildSettings = {
				GCC_OPTIMIZATION_LEVEL = 3;
			};
			name = Release;
		};
		CF0000000000000000000003 /* Debug */ = {
			isa = XCBuildConfiguration;
			buildSettings = {
				PRODUCT_NAME = App;
			};
			name = Debug;
		};
		CF0000000000000000000004 /* Release */ = {
			isa = XCBuildConfiguration;
			buildSettings = {
				PRODUCT_NAME = App;
			};
			name = Release;
		};
/* End XCBuildConfiguration section */

/* Begin XCConfigurationList section */
		CC0000000000000000000001 /* Build configuration list for PBXProject */ = {
			isa = XCConfigurationList;
			buildConfigurations = (
				CF0000000000000000000001 /* Debug */,
				CF0000000000000000000002 /* Release */,
			);
			defaultConfigurationIsVisible = 0;
			defaultConfigurationName = Release;
		};
		CC0000000000000000000002 /* Build configuration list for PBXNativeTarget "App" */ = {
			isa = XCConfigurationList;
			buildConfigurations = (
				CF0000000000000000000003 /* Debug */,
				CF0000000000000000000004 /* Release */,
			);
			defaultConfigurationIsVisible = 0;
			defaultConfigurationName = Release;
		};
/* End XCConfigurationList section */
	};
	rootObject = AA0000000000000000000001 /* Project object */;
}
`

// loadTestGraph parses the shared fixture into a graph.
func loadTestGraph(t *testing.T) *Graph {
	t.Helper()
	doc, err := pbx.Parse([]byte(testProject))
	require.NoError(t, err)
	g, err := NewGraph(doc)
	require.NoError(t, err)
	return g
}
