package ui

// GetScripts returns the JavaScript for the layout shell.
//
// Drawers are toggled by flipping data-open. A click inside a content area
// marked data-close-on-navigate bubbles up to the content element and closes
// the drawer, unless a descendant called stopPropagation first.
func GetScripts() string {
	return `
        document.addEventListener('DOMContentLoaded', function() {
            function setOpen(drawer, open) {
                drawer.setAttribute('data-open', open ? 'true' : 'false');
                drawer.setAttribute('aria-hidden', open ? 'false' : 'true');
                var main = document.querySelector('.shell-main');
                if (main && drawer.getAttribute('data-variant') !== 'temporary') {
                    main.classList.toggle('with-sidebar', open);
                }
            }

            document.querySelectorAll('[data-drawer-toggle]').forEach(function(button) {
                button.addEventListener('click', function() {
                    var drawer = document.getElementById(button.getAttribute('data-drawer-toggle'));
                    if (drawer) {
                        setOpen(drawer, drawer.getAttribute('data-open') !== 'true');
                    }
                });
            });

            document.querySelectorAll('.sidebar-drawer').forEach(function(drawer) {
                drawer.querySelectorAll('.sidebar-backdrop').forEach(function(backdrop) {
                    backdrop.addEventListener('click', function() {
                        setOpen(drawer, false);
                    });
                });
                drawer.querySelectorAll('[data-close-on-navigate]').forEach(function(content) {
                    content.addEventListener('click', function() {
                        setOpen(drawer, false);
                    });
                });
            });

            document.addEventListener('keydown', function(e) {
                if (e.key !== 'Escape') {
                    return;
                }
                document.querySelectorAll('.sidebar-drawer[data-variant="temporary"][data-open="true"]').forEach(function(drawer) {
                    setOpen(drawer, false);
                });
            });

            document.querySelectorAll('[data-auto-submit]').forEach(function(input) {
                input.addEventListener('change', function() {
                    if (input.form) {
                        input.form.submit();
                    }
                });
            });
        });
    `
}
