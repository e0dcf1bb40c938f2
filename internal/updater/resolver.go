package updater

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ralt/coreupdater/internal/coreinfo"
	"github.com/ralt/coreupdater/internal/models"
	"github.com/ralt/coreupdater/internal/utils"
	"github.com/sirupsen/logrus"
)

// Resolver turns a core filename into a list entry: local and remote
// paths, plus the metadata found in the core's info file.
type Resolver struct {
	CoresDir    string
	InfoDir     string
	BuildbotURL string
	Info        coreinfo.Reader
}

// NewResolver creates a resolver. info may be nil, in which case every
// core is treated as having no info file.
func NewResolver(coresDir, infoDir, buildbotURL string, info coreinfo.Reader) *Resolver {
	return &Resolver{
		CoresDir:    coresDir,
		InfoDir:     infoDir,
		BuildbotURL: buildbotURL,
		Info:        info,
	}
}

// resolvePaths fills the filename and path fields of entry
func (r *Resolver) resolvePaths(entry *models.Entry, filename string, listType models.ListType) error {
	if filename == "" || r.CoresDir == "" || r.InfoDir == "" {
		return fmt.Errorf("%w: filename, cores directory and info directory are required", ErrMissingArgument)
	}

	// Only buildbot cores have a remote location
	isBuildbot := listType == models.ListTypeBuildbot
	if isBuildbot && r.BuildbotURL == "" {
		return fmt.Errorf("%w: buildbot URL is required", ErrMissingArgument)
	}

	isArchive := utils.IsCompressedFile(filename)

	entry.RemoteFilename = filename

	entry.RemoteCorePath = ""
	if isBuildbot {
		entry.RemoteCorePath = utils.URLEncodeFull(utils.JoinURL(r.BuildbotURL, filename))
	}

	localCorePath := utils.JoinPath(r.CoresDir, filename)
	if isArchive {
		localCorePath = utils.RemoveExtension(localCorePath)
	}
	// PFD cores have non-standard file names that regular core handling
	// does not recognise, so their symlinks are kept as is
	entry.LocalCorePath = utils.ResolveRealPath(localCorePath, listType != models.ListTypePFD)

	localInfoPath := utils.RemoveExtension(utils.JoinPath(r.InfoDir, filename))
	if isArchive {
		localInfoPath = utils.RemoveExtension(localInfoPath)
	}
	// Info files end in "_libretro", core files may carry a platform
	// specific suffix such as "_android"
	localInfoPath = utils.StripPlatformSuffix(localInfoPath)
	entry.LocalInfoPath = localInfoPath + utils.CoreInfoExtension

	return nil
}

// applyCoreInfo fills the metadata fields of entry from its info file.
// Cores without a complete info file are flagged experimental.
func (r *Resolver) applyCoreInfo(entry *models.Entry, filename string) error {
	if entry.LocalInfoPath == "" || filename == "" {
		return fmt.Errorf("%w: info path and filename are required", ErrMissingArgument)
	}

	entry.DisplayName = ""
	entry.Description = ""
	entry.Licenses = nil
	entry.IsExperimental = false

	info, err := r.readInfo(entry.LocalInfoPath)
	if err != nil {
		entry.DisplayName = filename
		entry.IsExperimental = true
		return nil
	}

	if info.DisplayName != "" {
		entry.DisplayName = info.DisplayName
		entry.IsExperimental = info.IsExperimental
	} else {
		entry.DisplayName = filename
		entry.IsExperimental = true
	}

	entry.Description = info.Description

	if info.Licenses != "" {
		entry.Licenses = strings.Split(info.Licenses, "|")
	}

	return nil
}

func (r *Resolver) readInfo(path string) (*coreinfo.Info, error) {
	if r.Info == nil {
		return nil, coreinfo.ErrNotFound
	}

	info, err := r.Info.Read(path)
	if err != nil {
		if !errors.Is(err, coreinfo.ErrNotFound) {
			logrus.Debugf("Failed to read core info %s: %v", path, err)
		}
		return nil, err
	}
	return info, nil
}

// buildEntry resolves a complete entry for filename, or fails without
// producing anything
func (r *Resolver) buildEntry(filename string, listType models.ListType, date models.ReleaseDate, crc uint32) (models.Entry, error) {
	entry := models.Entry{
		CRC:  crc,
		Date: date,
	}

	if err := r.resolvePaths(&entry, filename, listType); err != nil {
		return models.Entry{}, err
	}

	if err := r.applyCoreInfo(&entry, filename); err != nil {
		return models.Entry{}, err
	}

	return entry, nil
}
