package twitchapi

// Records mirror the API's JSON schema. Optional keys are pointers and are
// nil when the key is absent or null; every other key is required (see
// required.go). Loosely typed numeric ids stay floating point as the API
// serves them.

// Addon is a catalog project (mod, modpack, resource pack, ...).
type Addon struct {
	ID                     float64           `json:"id"`
	Name                   string            `json:"name"`
	Authors                []Author          `json:"authors"`
	Attachments            []Attachment      `json:"attachments"`
	WebsiteURL             string            `json:"websiteUrl"`
	GameID                 float64           `json:"gameId"`
	Summary                string            `json:"summary"`
	DefaultFileID          float64           `json:"defaultFileId"`
	DownloadCount          float64           `json:"downloadCount"`
	LatestFiles            []File            `json:"latestFiles"`
	Categories             []PartialCategory `json:"categories"`
	Status                 uint32            `json:"status"`
	PrimaryCategoryID      uint32            `json:"primaryCategoryId"`
	CategorySection        CategorySection   `json:"categorySection"`
	Slug                   string            `json:"slug"`
	GameVersionLatestFiles []GameVersionFile `json:"gameVersionLatestFiles"`
	IsFeatured             bool              `json:"isFeatured"`
	PopularityScore        float64           `json:"popularityScore"`
	GamePopularityRank     float64           `json:"gamePopularityRank"`
	PrimaryLanguage        string            `json:"primaryLanguage"`
	GameSlug               string            `json:"gameSlug"`
	GameName               string            `json:"gameName"`
	PortalName             string            `json:"portalName"`
	DateModified           string            `json:"dateModified"`
	DateCreated            string            `json:"dateCreated"`
	DateReleased           string            `json:"dateReleased"`
	IsAvailable            bool              `json:"isAvailable"`
	// The API misspells this key.
	IsExperimental bool `json:"isExperiemental"`
}

// DefaultFile returns the latest file matching DefaultFileID, or nil.
func (a *Addon) DefaultFile() *File {
	for i := range a.LatestFiles {
		if a.LatestFiles[i].ID == a.DefaultFileID {
			return &a.LatestFiles[i]
		}
	}
	return nil
}

// GameVersionFile links a game version to the newest file built for it.
type GameVersionFile struct {
	GameVersion     string  `json:"gameVersion"`
	ProjectFileID   float64 `json:"projectFileId"`
	ProjectFileName string  `json:"projectFileName"`
	FileType        uint16  `json:"fileType"`
}

// CategorySection is the top-level grouping an add-on belongs to.
type CategorySection struct {
	ID                      uint32  `json:"id"`
	GameID                  uint32  `json:"gameId"`
	Name                    string  `json:"name"`
	PackageType             uint32  `json:"packageType"`
	Path                    string  `json:"path"`
	InitialInclusionPattern string  `json:"initialInclusionPattern"`
	ExtraIncludePattern     *string `json:"extraIncludePattern"`
	GameCategoryID          uint16  `json:"gameCategoryId"`
}

// PartialCategory is the category summary embedded in an Addon.
type PartialCategory struct {
	CategoryID uint32  `json:"categoryId"`
	Name       string  `json:"name"`
	URL        string  `json:"url"`
	AvatarURL  string  `json:"avatarUrl"`
	ParentID   uint32  `json:"parentId"`
	RootID     uint32  `json:"rootId"`
	ProjectID  float64 `json:"projectId"`
	AvatarID   uint16  `json:"avatarId"`
	GameID     uint32  `json:"gameId"`
}

// Author is a project member.
type Author struct {
	Name              string   `json:"name"`
	URL               string   `json:"url"`
	ProjectID         float64  `json:"projectId"`
	ID                float64  `json:"id"`
	ProjectTitleID    *float64 `json:"projectTitleId"`
	ProjectTitleTitle *string  `json:"projectTitleTitle"`
	UserID            float64  `json:"userId"`
	TwitchID          float64  `json:"twitchId"`
}

// Attachment is an image attached to a project, such as its logo.
type Attachment struct {
	ID           float64 `json:"id"`
	ProjectID    float64 `json:"projectId"`
	Description  string  `json:"description"`
	IsDefault    bool    `json:"isDefault"`
	ThumbnailURL string  `json:"thumbnailUrl"`
	Title        string  `json:"title"`
	URL          string  `json:"url"`
	Status       uint16  `json:"status"`
}

// Release types reported in File.ReleaseType.
const (
	ReleaseTypeRelease uint16 = 1
	ReleaseTypeBeta    uint16 = 2
	ReleaseTypeAlpha   uint16 = 3
)

// File is a downloadable release artifact of an add-on.
type File struct {
	ID                         float64               `json:"id"`
	DisplayName                string                `json:"displayName"`
	FileName                   string                `json:"fileName"`
	FileDate                   string                `json:"fileDate"`
	FileLength                 uint32                `json:"fileLength"`
	ReleaseType                uint16                `json:"releaseType"`
	FileStatus                 uint16                `json:"fileStatus"`
	DownloadURL                string                `json:"downloadUrl"`
	IsAlternate                bool                  `json:"isAlternate"`
	AlternateFileID            uint32                `json:"alternateFileId"`
	Dependencies               []File                `json:"dependencies"`
	IsAvailable                bool                  `json:"isAvailable"`
	Modules                    []Module              `json:"modules"`
	PackageFingerprint         float64               `json:"packageFingerprint"`
	GameVersion                []string              `json:"gameVersion"`
	SortableGameVersion        []SortableGameVersion `json:"sortableGameVersion"`
	InstallMetadata            *string               `json:"installMetadata"`
	Changelog                  *string               `json:"changelog"`
	HasInstallScript           bool                  `json:"hasInstallScript"`
	IsCompatibleWithClient     bool                  `json:"isCompatibleWithClient"`
	CategorySectionPackageType uint16                `json:"categorySectionPackageType"`
	RestrictProjectFileAccess  uint16                `json:"restrictProjectFileAccess"`
	ProjectStatus              uint16                `json:"projectStatus"`
	RenderCacheID              float64               `json:"renderCacheId"`
	FileLegacyMappingID        *float64              `json:"fileLegacyMappingId"`
	ProjectID                  float64               `json:"projectId"`
	ParentProjectFileID        *float64              `json:"parentProjectFileId"`
	ParentFileLegacyMappingID  *float64              `json:"parentFileLegacyMappingId"`
	FileTypeID                 *float64              `json:"fileTypeId"`
	ExposeAsAlternative        *File                 `json:"exposeAsAlternative"`
	PackageFingerprintID       float64               `json:"packageFingerprintId"`
	GameVersionDateReleased    string                `json:"gameVersionDateReleased"`
	GameVersionMappingID       float64               `json:"gameVersionMappingId"`
	GameVersionID              uint32                `json:"gameVersionId"`
	GameID                     uint32                `json:"gameId"`
	IsServerPack               bool                  `json:"isServerPack"`
	ServerPackFileID           *uint32               `json:"serverPackFileId"`
}

// ReleaseTypeName returns "release", "beta", "alpha" or "unknown".
func (f *File) ReleaseTypeName() string {
	switch f.ReleaseType {
	case ReleaseTypeRelease:
		return "release"
	case ReleaseTypeBeta:
		return "beta"
	case ReleaseTypeAlpha:
		return "alpha"
	default:
		return "unknown"
	}
}

// Module is a named component bundled inside a File.
type Module struct {
	FolderName  string  `json:"foldername"`
	Fingerprint float64 `json:"fingerprint"`
	Type        uint16  `json:"type"`
}

// SortableGameVersion pairs a game version with its zero-padded sort key.
type SortableGameVersion struct {
	GameVersionPadded      string `json:"gameVersionPadded"`
	GameVersion            string `json:"gameVersion"`
	GameVersionReleaseDate string `json:"gameVersionReleaseDate"`
	GameVersionName        string `json:"gameVersionName"`
}

// Category is a taxonomy node as served by /category/{id}.
type Category struct {
	ID                   float64 `json:"id"`
	Name                 string  `json:"name"`
	Slug                 string  `json:"slug"`
	AvatarURL            string  `json:"avatarUrl"`
	DateModified         string  `json:"dateModified"`
	ParentGameCategoryID float32 `json:"parentGameCategoryId"`
	Root                 float32 `json:"root"`
	GameID               float32 `json:"gameId"`
}
